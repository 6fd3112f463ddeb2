package xmlstream

import (
	"bufio"
	"io"
)

// Writer serializes markup events back to bytes. Events that were not
// rewritten are replayed from their original bytes, so a read-write loop
// with no mutation reproduces the input exactly. Rewritten elements are
// reconstructed from the tag name and attribute list, one space between
// attributes, values emitted verbatim between their quote characters.
type Writer struct {
	bw *bufio.Writer
}

// NewWriter wraps w with the given write buffer size in bytes.
// A non-positive size selects the default of 8 KiB.
func NewWriter(w io.Writer, bufferSize int) *Writer {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	return &Writer{bw: bufio.NewWriterSize(w, bufferSize)}
}

// Write serializes a single event.
func (w *Writer) Write(ev *Event) error {
	switch ev.Kind {
	case KindCharData:
		_, err := w.bw.Write(ev.Text)
		return err
	case KindComment:
		return w.wrap("<!--", ev.Text, "-->")
	case KindProcInst:
		return w.wrap("<?", ev.Text, "?>")
	case KindDirective:
		return w.wrap("<!", ev.Text, ">")
	case KindCDATA:
		return w.wrap("<![CDATA[", ev.Text, "]]>")
	case KindStartElement:
		return w.writeTag(ev, ">")
	case KindEmptyElement:
		return w.writeTag(ev, "/>")
	case KindEndElement:
		name := ev.Text
		if len(name) == 0 {
			name = []byte(ev.Name)
		}
		return w.wrap("</", name, ">")
	default:
		return nil
	}
}

// Flush forces all buffered bytes to the underlying stream. It must be
// called before the output is considered complete.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}

func (w *Writer) wrap(open string, text []byte, end string) error {
	if _, err := w.bw.WriteString(open); err != nil {
		return err
	}
	if _, err := w.bw.Write(text); err != nil {
		return err
	}
	_, err := w.bw.WriteString(end)
	return err
}

func (w *Writer) writeTag(ev *Event, end string) error {
	if !ev.rewritten && ev.raw != nil {
		return w.wrap("<", ev.raw, end)
	}

	if err := w.bw.WriteByte('<'); err != nil {
		return err
	}
	if _, err := w.bw.WriteString(ev.Name); err != nil {
		return err
	}
	for _, a := range ev.attrs {
		if err := w.bw.WriteByte(' '); err != nil {
			return err
		}
		if _, err := w.bw.WriteString(a.Name); err != nil {
			return err
		}
		if err := w.bw.WriteByte('='); err != nil {
			return err
		}
		q := a.Quote()
		if err := w.bw.WriteByte(q); err != nil {
			return err
		}
		if _, err := w.bw.WriteString(a.Value); err != nil {
			return err
		}
		if err := w.bw.WriteByte(q); err != nil {
			return err
		}
	}
	_, err := w.bw.WriteString(end)
	return err
}
