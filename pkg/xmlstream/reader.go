package xmlstream

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

const defaultBufferSize = 8 * 1024

var (
	errUnexpectedEOF    = errors.New("unexpected EOF")
	errInvalidTag       = errors.New("invalid tag name")
	errInvalidAttr      = errors.New("invalid attribute")
	errUnterminatedAttr = errors.New("unterminated attribute value")
	errDuplicateAttr    = errors.New("duplicate attribute name")
	errInvalidComment   = errors.New("unterminated comment")
	errInvalidProcInst  = errors.New("unterminated processing instruction")
	errInvalidCDATA     = errors.New("unterminated CDATA section")
	errInvalidDirective = errors.New("unterminated directive")
)

// SyntaxError reports malformed markup with the byte offset where the
// offending construct started.
type SyntaxError struct {
	Offset int64
	Err    error
}

// Error formats the syntax error with location and cause.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("xml syntax error at offset %d: %v", e.Offset, e.Err)
}

// Unwrap exposes the underlying error.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Reader produces a lazy, forward-only sequence of markup events from an
// input byte stream. It is not restartable and supports a single
// consumer. The sequence terminates with io.EOF; malformed markup
// surfaces as *SyntaxError and any other failure comes from the
// underlying reader.
type Reader struct {
	br     *bufio.Reader
	offset int64
	err    error
}

// NewReader wraps r with the given read buffer size in bytes.
// A non-positive size selects the default of 8 KiB.
func NewReader(r io.Reader, bufferSize int) *Reader {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	return &Reader{br: bufio.NewReaderSize(r, bufferSize)}
}

// Next returns the next markup event, or io.EOF once the stream is
// exhausted. Errors are sticky: after a failure every subsequent call
// returns the same error.
func (r *Reader) Next() (*Event, error) {
	if r.err != nil {
		return nil, r.err
	}
	ev, err := r.next()
	if err != nil {
		r.err = err
		return nil, err
	}
	return ev, nil
}

func (r *Reader) next() (*Event, error) {
	b, err := r.readByte()
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, err
	}

	if b != '<' {
		return r.readCharData(b)
	}

	start := r.offset - 1
	b, err = r.readByte()
	if err != nil {
		return nil, r.syntax(start, errUnexpectedEOF)
	}

	switch b {
	case '?':
		return r.readProcInst(start)
	case '!':
		return r.readBang(start)
	case '/':
		return r.readEndElement(start)
	default:
		return r.readStartElement(start, b)
	}
}

// readCharData collects literal text up to, but not including, the next
// tag opener.
func (r *Reader) readCharData(first byte) (*Event, error) {
	text := []byte{first}
	for {
		peek, err := r.br.Peek(1)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if peek[0] == '<' {
			break
		}
		b, _ := r.readByte()
		text = append(text, b)
	}
	return &Event{Kind: KindCharData, Text: text}, nil
}

// readProcInst consumes a processing instruction after "<?" and returns
// the content between the markers.
func (r *Reader) readProcInst(start int64) (*Event, error) {
	text, err := r.readUntil([]byte("?>"))
	if err != nil {
		return nil, r.syntax(start, errInvalidProcInst)
	}
	return &Event{Kind: KindProcInst, Text: text}, nil
}

// readBang dispatches the constructs starting with "<!": comments,
// CDATA sections and directives such as DOCTYPE.
func (r *Reader) readBang(start int64) (*Event, error) {
	peek, err := r.br.Peek(2)
	if err == nil && bytes.Equal(peek, []byte("--")) {
		r.discard(2)
		text, err := r.readUntil([]byte("-->"))
		if err != nil {
			return nil, r.syntax(start, errInvalidComment)
		}
		return &Event{Kind: KindComment, Text: text}, nil
	}

	peek, err = r.br.Peek(7)
	if err == nil && bytes.Equal(peek, []byte("[CDATA[")) {
		r.discard(7)
		text, err := r.readUntil([]byte("]]>"))
		if err != nil {
			return nil, r.syntax(start, errInvalidCDATA)
		}
		return &Event{Kind: KindCDATA, Text: text}, nil
	}

	// Directive. Square brackets nest for DOCTYPE internal subsets.
	var text []byte
	depth := 0
	for {
		b, err := r.readByte()
		if err != nil {
			return nil, r.syntax(start, errInvalidDirective)
		}
		switch {
		case b == '[':
			depth++
		case b == ']':
			depth--
		case b == '>' && depth <= 0:
			return &Event{Kind: KindDirective, Text: text}, nil
		}
		text = append(text, b)
	}
}

// readEndElement consumes a closing tag after "</".
func (r *Reader) readEndElement(start int64) (*Event, error) {
	var text []byte
	for {
		b, err := r.readByte()
		if err != nil {
			return nil, r.syntax(start, errUnexpectedEOF)
		}
		if b == '>' {
			break
		}
		text = append(text, b)
	}
	name := string(bytes.TrimSpace(text))
	if name == "" {
		return nil, r.syntax(start, errInvalidTag)
	}
	return &Event{Kind: KindEndElement, Name: name, Text: text}, nil
}

// readStartElement consumes a start or empty-element tag. first is the
// byte immediately after '<'. The raw tag interior is kept so the writer
// can replay untouched elements byte-for-byte.
func (r *Reader) readStartElement(start int64, first byte) (*Event, error) {
	raw := []byte{first}
	var quote byte
	for {
		b, err := r.readByte()
		if err != nil {
			return nil, r.syntax(start, errUnexpectedEOF)
		}
		if quote != 0 {
			if b == quote {
				quote = 0
			}
			raw = append(raw, b)
			continue
		}
		switch b {
		case '"', '\'':
			quote = b
			raw = append(raw, b)
		case '>':
			return r.parseTag(start, raw)
		default:
			raw = append(raw, b)
		}
	}
}

// parseTag splits the raw tag interior into name and attributes.
func (r *Reader) parseTag(start int64, raw []byte) (*Event, error) {
	kind := KindStartElement
	if n := len(raw); n > 0 && raw[n-1] == '/' {
		kind = KindEmptyElement
		raw = raw[:n-1]
	}

	i := 0
	for i < len(raw) && !isSpace(raw[i]) {
		i++
	}
	name := string(raw[:i])
	if name == "" || name[0] == '=' || name[0] == '"' || name[0] == '\'' {
		return nil, r.syntax(start, errInvalidTag)
	}

	attrs, err := r.parseAttrs(start, raw[i:])
	if err != nil {
		return nil, err
	}
	return &Event{Kind: kind, Name: name, attrs: attrs, raw: raw}, nil
}

// parseAttrs parses the ordered attribute list from the tag interior
// following the name. Attribute values must be quoted; names must be
// unique within the element.
func (r *Reader) parseAttrs(start int64, rest []byte) ([]Attr, error) {
	var attrs []Attr
	i := 0
	for {
		for i < len(rest) && isSpace(rest[i]) {
			i++
		}
		if i >= len(rest) {
			return attrs, nil
		}

		nameStart := i
		for i < len(rest) && rest[i] != '=' && !isSpace(rest[i]) {
			i++
		}
		name := string(rest[nameStart:i])
		if name == "" {
			return nil, r.syntax(start, errInvalidAttr)
		}

		for i < len(rest) && isSpace(rest[i]) {
			i++
		}
		if i >= len(rest) || rest[i] != '=' {
			return nil, r.syntax(start, errInvalidAttr)
		}
		i++
		for i < len(rest) && isSpace(rest[i]) {
			i++
		}
		if i >= len(rest) || (rest[i] != '"' && rest[i] != '\'') {
			return nil, r.syntax(start, errInvalidAttr)
		}
		quote := rest[i]
		i++
		valueStart := i
		for i < len(rest) && rest[i] != quote {
			i++
		}
		if i >= len(rest) {
			return nil, r.syntax(start, errUnterminatedAttr)
		}
		value := toValidUTF8(string(rest[valueStart:i]))
		i++

		for _, a := range attrs {
			if a.Name == name {
				return nil, r.syntax(start, errDuplicateAttr)
			}
		}
		attrs = append(attrs, Attr{Name: name, Value: value, quote: quote})
	}
}

// readUntil consumes bytes up to and including the marker, returning the
// bytes before it.
func (r *Reader) readUntil(marker []byte) ([]byte, error) {
	var out []byte
	for {
		b, err := r.readByte()
		if err != nil {
			return nil, errUnexpectedEOF
		}
		out = append(out, b)
		if len(out) >= len(marker) && bytes.Equal(out[len(out)-len(marker):], marker) {
			return out[:len(out)-len(marker)], nil
		}
	}
}

func (r *Reader) readByte() (byte, error) {
	b, err := r.br.ReadByte()
	if err == nil {
		r.offset++
	}
	return b, err
}

func (r *Reader) discard(n int) {
	d, _ := r.br.Discard(n)
	r.offset += int64(d)
}

func (r *Reader) syntax(offset int64, err error) error {
	return &SyntaxError{Offset: offset, Err: err}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
