// Package plugin defines the transformation units that rewrite SVG
// elements as they stream through the processing pipeline.
//
// A plugin sees every start and empty element, in registration order,
// and may rewrite the element's attribute list in place. Composition is
// sequential: each plugin observes the mutations of the plugins
// registered before it. Plugins never see text, comments or other
// non-element events.
//
// The set of plugins is open. New plugins are added by appending a
// builder to the registry (see registry.go); the pipeline never
// enumerates concrete plugin types.
package plugin

import (
	"github.com/svgtools/svgmin/pkg/xmlstream"
)

// Stat is one labeled statistic reported by a plugin, used only for
// reporting, never for control flow.
type Stat struct {
	Label string
	Value string
}

// Plugin is the capability contract every transformation unit satisfies.
type Plugin interface {
	// Init is called exactly once before the first event. It resets
	// internal counters so a plugin instance can be reused across
	// files.
	Init() error

	// ProcessElement is called once per start or empty element, in
	// the plugin's registered position. The element's attribute list
	// may be read and rewritten; references to it must not be
	// retained beyond the call.
	ProcessElement(el *xmlstream.Event) error

	// Finalize is called exactly once after the terminal event, only
	// if every prior stream read succeeded.
	Finalize() error

	// Name identifies the plugin in logs and reports.
	Name() string

	// Stats returns the plugin's statistics, regenerated on demand.
	Stats() []Stat
}
