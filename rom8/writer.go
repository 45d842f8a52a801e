package rom8

import (
	"encoding/binary"
	"io"
	"os"
)

// Writer encodes records as a ROM8 stream. The compatibility record is
// written when the Writer is created and the end record when it is closed
type Writer struct {
	w      io.Writer
	err    error
	closed bool
}

// NewWriter returns a Writer that has already written the native
// compatibility record to w
func NewWriter(w io.Writer) (*Writer, error) {
	wr := &Writer{w: w}
	if err := wr.write(TagCompatible, []byte(Compat)); err != nil {
		return nil, err
	}
	return wr, nil
}

func (w *Writer) write(tag Tag, payload []byte) error {
	if w.err != nil {
		return w.err
	}

	var header [headerSize]byte
	binary.LittleEndian.PutUint32(header[0:], uint32(tag))
	binary.LittleEndian.PutUint32(header[4:], uint32(len(payload)))

	if _, w.err = w.w.Write(header[:]); w.err != nil {
		return w.err
	}
	_, w.err = w.w.Write(payload)

	return w.err
}

// Write appends a record. The payload is written verbatim
func (w *Writer) Write(tag Tag, payload []byte) error {
	if w.closed {
		return ErrClosed
	}

	if tag == TagEnd || tag == TagCompatible {
		return ErrReservedTag
	}

	return w.write(tag, payload)
}

// WriteProperty appends a prop record holding key=value
func (w *Writer) WriteProperty(key, value string) error {
	return w.Write(TagProp, []byte(key+"="+value))
}

// WriteRecord appends r
func (w *Writer) WriteRecord(r Record) error {
	return w.Write(r.Tag, r.Payload)
}

// Close writes the end record. It does not close the underlying writer
func (w *Writer) Close() error {
	if w.closed {
		return ErrClosed
	}
	w.closed = true
	return w.write(TagEnd, nil)
}

// WriteFile creates the file at path and passes a Writer for it to fn. The
// stream is terminated and the file closed once fn returns. If fn or any
// write fails the file is removed
func WriteFile(path string, fn func(*Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	w, err := NewWriter(f)
	if err != nil {
		return err
	}

	if err = fn(w); err != nil {
		return err
	}

	return w.Close()
}
