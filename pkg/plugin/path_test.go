package plugin

import (
	"io"
	"strings"
	"testing"

	"github.com/svgtools/svgmin/pkg/xmlstream"
)

// element parses the first element event out of a tag literal.
func element(t *testing.T, tag string) *xmlstream.Event {
	t.Helper()
	r := xmlstream.NewReader(strings.NewReader(tag), 0)
	for {
		ev, err := r.Next()
		if err == io.EOF {
			t.Fatalf("no element in %q", tag)
		}
		if err != nil {
			t.Fatalf("parse %q: %v", tag, err)
		}
		if ev.IsElement() {
			return ev
		}
	}
}

func attrNames(ev *xmlstream.Event) []string {
	var names []string
	for _, a := range ev.Attrs() {
		names = append(names, a.Name)
	}
	return names
}

func TestPathOptimizerRewritesD(t *testing.T) {
	p := NewPathOptimizer(2)
	if err := p.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	el := element(t, `<path d="M 100.000 200.000 L 300.000 400.000"/>`)
	if err := p.ProcessElement(el); err != nil {
		t.Fatalf("ProcessElement() error: %v", err)
	}

	if v, _ := el.Attr("d"); v != "M100 200L300 400" {
		t.Errorf("d = %q, want %q", v, "M100 200L300 400")
	}
}

func TestPathOptimizerMovesDLast(t *testing.T) {
	p := NewPathOptimizer(2)
	if err := p.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	el := element(t, `<path stroke="red" d="M 1 2" fill="blue" opacity="0.5"/>`)
	if err := p.ProcessElement(el); err != nil {
		t.Fatalf("ProcessElement() error: %v", err)
	}

	got := attrNames(el)
	want := []string{"stroke", "fill", "opacity", "d"}
	if len(got) != len(want) {
		t.Fatalf("attrs = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("attrs = %v, want %v", got, want)
		}
	}
}

func TestPathOptimizerIgnoresOtherElements(t *testing.T) {
	p := NewPathOptimizer(2)
	if err := p.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	tests := []string{
		`<rect d="M 1.000 2.000" width="3"/>`, // d on a non-path element
		`<path fill="red"/>`,                  // path without d
	}
	for _, tag := range tests {
		el := element(t, tag)
		before := attrNames(el)
		if err := p.ProcessElement(el); err != nil {
			t.Fatalf("ProcessElement() error: %v", err)
		}
		after := attrNames(el)
		if len(before) != len(after) {
			t.Errorf("%s: attrs changed: %v -> %v", tag, before, after)
		}
		for i := range before {
			if before[i] != after[i] {
				t.Errorf("%s: attrs changed: %v -> %v", tag, before, after)
			}
		}
	}
	if stats := p.Stats(); stats[0].Value != "0" {
		t.Errorf("paths optimized = %s, want 0", stats[0].Value)
	}
}

func TestPathOptimizerCounters(t *testing.T) {
	p := NewPathOptimizer(2)
	if err := p.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	for _, tag := range []string{
		`<path d="M 100.000 200.000"/>`,
		`<path d="M 1.000 2.000"/>`,
	} {
		if err := p.ProcessElement(element(t, tag)); err != nil {
			t.Fatalf("ProcessElement() error: %v", err)
		}
	}

	stats := p.Stats()
	if stats[0].Label != "Paths optimized" || stats[0].Value != "2" {
		t.Errorf("stats[0] = %+v", stats[0])
	}
	// "M 100.000 200.000" (17) -> "M100 200" (8) saves 9,
	// "M 1.000 2.000" (13) -> "M1 2" (4) saves 9.
	if stats[1].Label != "Characters saved" || stats[1].Value != "18" {
		t.Errorf("stats[1] = %+v", stats[1])
	}

	// Init resets counters for reuse across files.
	if err := p.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	stats = p.Stats()
	if stats[0].Value != "0" || stats[1].Value != "0" {
		t.Errorf("stats after reset = %+v", stats)
	}
}

func TestPathOptimizerNegativeSavings(t *testing.T) {
	p := NewPathOptimizer(2)
	if err := p.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	// ".5" renders as "0.5": each number gains a byte.
	if err := p.ProcessElement(element(t, `<path d="M.5 .5"/>`)); err != nil {
		t.Fatalf("ProcessElement() error: %v", err)
	}
	stats := p.Stats()
	if stats[1].Value[0] != '-' {
		t.Errorf("chars saved = %s, want negative", stats[1].Value)
	}
}
