package plugin

import (
	"github.com/charmbracelet/log"
)

// Builder describes one registered plugin kind. Builders with a nil New
// are declared extension points: the configuration recognizes them, the
// plugins listing shows them, but enabling one registers nothing.
type Builder struct {
	// Name is the display name of the plugin.
	Name string

	// Summary is a one-line description for the plugins listing.
	Summary string

	// Flags lists the CLI flags that control the plugin.
	Flags []string

	// Enabled reports whether the configuration requests this plugin.
	Enabled func(Config) bool

	// New constructs the plugin from the configuration. Nil marks a
	// declared-but-unimplemented plugin.
	New func(Config) Plugin
}

// Implemented reports whether the builder constructs a real plugin.
func (b Builder) Implemented() bool {
	return b.New != nil
}

// builders is the ordered plugin registry. Registration order is the
// order plugins run in; new plugins are added here without touching the
// pipeline.
var builders = []Builder{
	{
		Name:    "Path Optimizer",
		Summary: "Optimizes path data by reducing decimal places and removing unnecessary spaces",
		Flags:   []string{"--optimize-paths", "--path-decimals <VALUE>"},
		Enabled: func(c Config) bool { return c.PathOptimizer != nil },
		New: func(c Config) Plugin {
			return NewPathOptimizer(c.PathOptimizer.DecimalPlaces)
		},
	},
	{
		Name:    "Gradient Deduplicator",
		Summary: "Merges identical gradient definitions",
		Flags:   []string{"--dedupe-gradients"},
		Enabled: func(c Config) bool { return c.DedupeGradients },
	},
	{
		Name:    "ID Remover",
		Summary: "Removes unreferenced id attributes",
		Flags:   []string{"--remove-ids", "--preserve-ids <LIST>"},
		Enabled: func(c Config) bool { return c.RemoveIDs.Enabled },
	},
	{
		Name:    "Data Attribute Remover",
		Summary: "Strips data-* attributes",
		Flags:   []string{"--remove-data-attrs"},
		Enabled: func(c Config) bool { return c.RemoveDataAttrs },
	},
}

// Builders returns the registry in registration order.
func Builders() []Builder {
	out := make([]Builder, len(builders))
	copy(out, builders)
	return out
}

// FromConfig instantiates every enabled, implemented plugin in
// registration order. Enabled plugins without an implementation are
// logged as declared stubs rather than silently dropped.
func FromConfig(cfg Config, logger *log.Logger) []Plugin {
	if logger == nil {
		logger = log.Default()
	}

	var plugins []Plugin
	for _, b := range builders {
		if !b.Enabled(cfg) {
			continue
		}
		if !b.Implemented() {
			logger.Warn("plugin declared but not implemented; skipping", "plugin", b.Name)
			continue
		}
		logger.Debug("enabling plugin", "plugin", b.Name)
		plugins = append(plugins, b.New(cfg))
	}
	return plugins
}
