package plugin

// Config is the plugin configuration surface consumed by the registry.
// It is produced by the CLI layer from flags, or decoded from a TOML
// configuration file; TOML tags mirror the flag names.
type Config struct {
	// PathOptimizer enables the path data optimizer when non-nil.
	PathOptimizer *PathOptimizerConfig `toml:"path_optimizer"`

	// DedupeGradients requests gradient deduplication. Recognized but
	// not yet implemented; no plugin is registered for it.
	DedupeGradients bool `toml:"dedupe_gradients"`

	// RemoveIDs requests identifier removal. Recognized but not yet
	// implemented; no plugin is registered for it.
	RemoveIDs IDRemoverConfig `toml:"remove_ids"`

	// RemoveDataAttrs requests data-* attribute removal. Recognized
	// but not yet implemented; no plugin is registered for it.
	RemoveDataAttrs bool `toml:"remove_data_attrs"`
}

// PathOptimizerConfig configures the path data optimizer.
type PathOptimizerConfig struct {
	// DecimalPlaces is the maximum number of fractional digits kept
	// when re-rendering a number.
	DecimalPlaces int `toml:"decimal_places"`
}

// IDRemoverConfig configures the declared identifier-removal plugin.
type IDRemoverConfig struct {
	Enabled bool `toml:"enabled"`

	// Preserve lists identifiers that must survive removal, in order.
	Preserve []string `toml:"preserve"`
}
