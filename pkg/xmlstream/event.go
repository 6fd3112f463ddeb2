// Package xmlstream provides a forward-only markup event stream over SVG
// documents, paired with a serializer that reproduces unmodified events
// byte-for-byte.
//
// The reader tokenizes input into discrete events (elements, character
// data, comments, processing instructions, directives, CDATA) without
// ever materializing the document; memory use is bounded by the largest
// single event. The writer emits events back out, preserving the original
// bytes of any event that was not rewritten, including attribute order,
// quoting style, and the self-closing tag form.
//
// Attribute values are carried as raw text: entity references are left
// intact and byte sequences that are not valid UTF-8 are replaced with
// U+FFFD rather than rejected. This lossy decoding is a deliberate
// policy, not an error path.
package xmlstream

import "strings"

// Kind identifies the syntactic kind of a markup event.
type Kind byte

const (
	KindNone Kind = iota
	KindProcInst
	KindDirective
	KindComment
	KindCDATA
	KindCharData
	KindStartElement
	KindEmptyElement
	KindEndElement
)

// String returns a stable name for the kind, suitable for debugging.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindProcInst:
		return "ProcInst"
	case KindDirective:
		return "Directive"
	case KindComment:
		return "Comment"
	case KindCDATA:
		return "CDATA"
	case KindCharData:
		return "CharData"
	case KindStartElement:
		return "StartElement"
	case KindEmptyElement:
		return "EmptyElement"
	case KindEndElement:
		return "EndElement"
	default:
		return "Unknown"
	}
}

// Attr is a single name="value" attribute pair. Value holds the raw
// attribute text with entity references intact; the writer emits it
// verbatim between the original quote characters.
type Attr struct {
	Name  string
	Value string

	// quote is the quote character observed in the input. Zero means
	// the attribute was created programmatically; the writer uses
	// double quotes.
	quote byte
}

// Quote returns the quote character the writer will use for this
// attribute.
func (a Attr) Quote() byte {
	if a.quote == 0 {
		return '"'
	}
	return a.quote
}

// Event is one unit of the markup stream.
//
// For element events, Name holds the tag name and Attrs the ordered
// attribute list. For all other kinds, Text holds the raw content bytes
// (between the markers for comments, processing instructions, directives
// and CDATA; the literal bytes for character data). For end elements,
// Text additionally preserves the raw name text so trailing whitespace
// inside the tag survives a round trip.
type Event struct {
	Kind Kind
	Name string
	Text []byte

	attrs     []Attr
	raw       []byte // original tag interior for start/empty elements
	rewritten bool
}

// IsElement reports whether the event is a start or empty element, the
// only kinds offered to plugins for mutation.
func (e *Event) IsElement() bool {
	return e.Kind == KindStartElement || e.Kind == KindEmptyElement
}

// Attrs returns the ordered attribute list of an element event.
// The returned slice must not be retained beyond the current event.
func (e *Event) Attrs() []Attr {
	return e.attrs
}

// Attr looks up an attribute value by name.
func (e *Event) Attr(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttrs replaces the attribute list. The event is marked as rewritten,
// so the writer reconstructs the tag from Name and the new list instead
// of replaying the original bytes.
func (e *Event) SetAttrs(attrs []Attr) {
	e.attrs = attrs
	e.rewritten = true
}

// toValidUTF8 applies the lossy decoding policy: invalid byte sequences
// become U+FFFD, never an error.
func toValidUTF8(s string) string {
	return strings.ToValidUTF8(s, "�")
}
