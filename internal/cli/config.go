package cli

import (
	"github.com/BurntSushi/toml"

	"github.com/svgtools/svgmin/pkg/errors"
	"github.com/svgtools/svgmin/pkg/plugin"
)

// loadConfig reads a plugin configuration from a TOML file. Sections
// mirror the optimize flags:
//
//	[path_optimizer]
//	decimal_places = 2
//
//	dedupe_gradients = true
//	remove_data_attrs = false
//
//	[remove_ids]
//	enabled = true
//	preserve = ["logo", "icon"]
func loadConfig(path string) (plugin.Config, error) {
	var cfg plugin.Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return plugin.Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load config %s", path)
	}
	return cfg, nil
}
