package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"github.com/svgtools/svgmin/pkg/errors"
	"github.com/svgtools/svgmin/pkg/plugin"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "svgmin.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
dedupe_gradients = true
remove_data_attrs = true

[path_optimizer]
decimal_places = 3

[remove_ids]
enabled = true
preserve = ["logo", "icon"]
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.PathOptimizer == nil || cfg.PathOptimizer.DecimalPlaces != 3 {
		t.Errorf("PathOptimizer = %+v, want decimal_places 3", cfg.PathOptimizer)
	}
	if !cfg.DedupeGradients {
		t.Error("DedupeGradients = false, want true")
	}
	if !cfg.RemoveIDs.Enabled {
		t.Error("RemoveIDs.Enabled = false, want true")
	}
	if len(cfg.RemoveIDs.Preserve) != 2 || cfg.RemoveIDs.Preserve[0] != "logo" {
		t.Errorf("RemoveIDs.Preserve = %v, want [logo icon]", cfg.RemoveIDs.Preserve)
	}
	if !cfg.RemoveDataAttrs {
		t.Error("RemoveDataAttrs = false, want true")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("loadConfig() error = nil, want error")
	}
	if got := errors.GetCode(err); got != errors.ErrCodeInvalidConfig {
		t.Errorf("GetCode() = %q, want %q", got, errors.ErrCodeInvalidConfig)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfigFile(t, "[path_optimizer\ndecimal_places = 3")
	_, err := loadConfig(path)
	if err == nil {
		t.Fatal("loadConfig() error = nil, want error")
	}
	if got := errors.GetCode(err); got != errors.ErrCodeInvalidConfig {
		t.Errorf("GetCode() = %q, want %q", got, errors.ErrCodeInvalidConfig)
	}
}

// optimizeFlags mirrors the flag set of the optimize command so tests
// can exercise flag-over-file precedence without a full cobra run.
func optimizeFlags(opts *optimizeOpts) *pflag.FlagSet {
	fs := pflag.NewFlagSet("optimize", pflag.ContinueOnError)
	fs.BoolVar(&opts.optimizePaths, "optimize-paths", false, "")
	fs.IntVar(&opts.pathDecimals, "path-decimals", opts.pathDecimals, "")
	fs.BoolVar(&opts.dedupeGradients, "dedupe-gradients", false, "")
	fs.BoolVar(&opts.removeIDs, "remove-ids", false, "")
	fs.StringSliceVar(&opts.preserveIDs, "preserve-ids", nil, "")
	fs.BoolVar(&opts.removeDataAttrs, "remove-data-attrs", false, "")
	return fs
}

func TestOptimizeOptsConfig(t *testing.T) {
	fileContent := `
[path_optimizer]
decimal_places = 4
`

	tests := []struct {
		name         string
		args         []string
		useFile      bool
		wantPath     bool
		wantDecimals int
	}{
		{
			name:     "defaults leave everything disabled",
			args:     nil,
			wantPath: false,
		},
		{
			name:         "flags enable path optimizer",
			args:         []string{"--optimize-paths", "--path-decimals=1"},
			wantPath:     true,
			wantDecimals: 1,
		},
		{
			name:         "file enables path optimizer",
			args:         nil,
			useFile:      true,
			wantPath:     true,
			wantDecimals: 4,
		},
		{
			name:         "flag overrides file precision",
			args:         []string{"--path-decimals=1"},
			useFile:      true,
			wantPath:     true,
			wantDecimals: 1,
		},
		{
			name:     "flag disables file-enabled optimizer",
			args:     []string{"--optimize-paths=false"},
			useFile:  true,
			wantPath: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := optimizeOpts{pathDecimals: defaultPathDecimals}
			if tt.useFile {
				opts.configFile = writeConfigFile(t, fileContent)
			}
			fs := optimizeFlags(&opts)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			cfg, err := opts.config(fs)
			if err != nil {
				t.Fatalf("config() error = %v", err)
			}
			if got := cfg.PathOptimizer != nil; got != tt.wantPath {
				t.Fatalf("PathOptimizer enabled = %v, want %v", got, tt.wantPath)
			}
			if tt.wantPath && cfg.PathOptimizer.DecimalPlaces != tt.wantDecimals {
				t.Errorf("DecimalPlaces = %d, want %d", cfg.PathOptimizer.DecimalPlaces, tt.wantDecimals)
			}
		})
	}
}

func TestOptimizeOptsConfigNegativeDecimals(t *testing.T) {
	opts := optimizeOpts{pathDecimals: defaultPathDecimals}
	fs := optimizeFlags(&opts)
	if err := fs.Parse([]string{"--optimize-paths", "--path-decimals=-1"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	_, err := opts.config(fs)
	if err == nil {
		t.Fatal("config() error = nil, want error")
	}
	if got := errors.GetCode(err); got != errors.ErrCodeInvalidInput {
		t.Errorf("GetCode() = %q, want %q", got, errors.ErrCodeInvalidInput)
	}
}

func TestOptimizeOptsConfigFlagsOverrideFileToggles(t *testing.T) {
	opts := optimizeOpts{pathDecimals: defaultPathDecimals}
	opts.configFile = writeConfigFile(t, `
dedupe_gradients = true
remove_data_attrs = true

[remove_ids]
enabled = true
preserve = ["logo"]
`)
	fs := optimizeFlags(&opts)
	args := []string{"--dedupe-gradients=false", "--remove-data-attrs=false", "--preserve-ids=icon,title"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	cfg, err := opts.config(fs)
	if err != nil {
		t.Fatalf("config() error = %v", err)
	}
	if cfg.DedupeGradients {
		t.Error("DedupeGradients = true, want false after flag override")
	}
	if cfg.RemoveDataAttrs {
		t.Error("RemoveDataAttrs = true, want false after flag override")
	}
	if !cfg.RemoveIDs.Enabled {
		t.Error("RemoveIDs.Enabled = false, want true from file")
	}
	want := []string{"icon", "title"}
	if len(cfg.RemoveIDs.Preserve) != len(want) || cfg.RemoveIDs.Preserve[0] != want[0] {
		t.Errorf("RemoveIDs.Preserve = %v, want %v", cfg.RemoveIDs.Preserve, want)
	}
}

func TestGlobalOptsBufferBytes(t *testing.T) {
	tests := []struct {
		name     string
		bufferKB int
		want     int
	}{
		{"default size", defaultBufferKB, defaultBufferKB * 1024},
		{"custom size", 64, 64 * 1024},
		{"zero falls back to default", 0, defaultBufferKB * 1024},
		{"negative falls back to default", -4, defaultBufferKB * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := globalOpts{bufferKB: tt.bufferKB}
			if got := g.bufferBytes(); got != tt.want {
				t.Errorf("bufferBytes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPluginsFromConfig(t *testing.T) {
	cfg := plugin.Config{PathOptimizer: &plugin.PathOptimizerConfig{DecimalPlaces: 2}}
	plugins := plugin.FromConfig(cfg, nil)
	if len(plugins) != 1 {
		t.Fatalf("FromConfig() returned %d plugins, want 1", len(plugins))
	}
	if got := plugins[0].Name(); got != "Path Optimizer" {
		t.Errorf("Name() = %q, want %q", got, "Path Optimizer")
	}
}
