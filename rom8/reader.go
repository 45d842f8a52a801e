package rom8

import (
	"encoding/binary"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/hashicorp/go-hclog"
)

const headerSize = 8

// Record is a single tag and payload pair
type Record struct {
	Tag     Tag
	Payload []byte
}

type readerState int

const (
	awaitingCompat readerState = iota
	streaming
	done
	failed
)

// Reader decodes records from an in-memory ROM8 stream. The leading
// compatibility record and the trailing end record are consumed by the
// Reader and never returned
type Reader struct {
	b      []byte
	offs   int
	state  readerState
	err    error
	compat string
	tags   map[uint32]Tag
	logger hclog.Logger
}

// NewReader returns a Reader for the stream held in b. Diagnostics are sent
// to logger, which may be nil
func NewReader(b []byte, logger hclog.Logger) *Reader {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Reader{
		b:      b,
		logger: logger,
	}
}

// Compat returns the compatibility token declared by the stream. It is empty
// until the first record has been read
func (r *Reader) Compat() string {
	return r.compat
}

func (r *Reader) readRecord() (uint32, []byte, error) {
	if len(r.b)-r.offs < headerSize {
		return 0, nil, fmt.Errorf("%w: at offset %d", ErrMalformedHeader, r.offs)
	}

	tag := binary.LittleEndian.Uint32(r.b[r.offs:])
	length := binary.LittleEndian.Uint32(r.b[r.offs+4:])
	r.offs += headerSize

	if uint64(length) > uint64(len(r.b)-r.offs) {
		return 0, nil, fmt.Errorf("%w: %d bytes at offset %d", ErrTruncatedPayload, length, r.offs)
	}

	payload := r.b[r.offs : r.offs+int(length)]
	r.offs += int(length)

	return tag, payload, nil
}

func (r *Reader) fail(err error) (Record, error) {
	r.state, r.err = failed, err
	return Record{}, err
}

func (r *Reader) readCompat() error {
	tag, payload, err := r.readRecord()
	if err != nil {
		return err
	}

	if Tag(tag) != TagCompatible {
		return fmt.Errorf("%w: first record is %s, not %s", ErrMalformedHeader, Tag(tag), TagCompatible)
	}

	compat := string(payload)
	if !KnownCompat(compat) {
		return fmt.Errorf("%w: %q", ErrUnknownCompatibility, compat)
	}
	if compat != Compat {
		r.logger.Warn("using legacy compatibility", "compat", compat)
		r.tags = legacyTags[compat]
	}
	r.compat = compat

	return nil
}

// Next returns the next record in the stream. It returns io.EOF once the end
// record has been read. Any other error is final and is returned by every
// subsequent call
func (r *Reader) Next() (Record, error) {
	switch r.state {
	case done:
		return Record{}, io.EOF
	case failed:
		return Record{}, r.err
	case awaitingCompat:
		if err := r.readCompat(); err != nil {
			return r.fail(err)
		}
		r.state = streaming
	}

	for {
		raw, payload, err := r.readRecord()
		if err != nil {
			return r.fail(err)
		}

		if raw == uint32(TagEnd) {
			if len(payload) != 0 {
				return r.fail(fmt.Errorf("%w: end record with %d byte payload", ErrMalformedHeader, len(payload)))
			}
			r.state = done
			return Record{}, io.EOF
		}

		tag := Tag(raw)
		if r.tags != nil {
			var ok bool
			if tag, ok = r.tags[raw]; !ok {
				r.logger.Warn("unsupported tag for compatible", "compat", r.compat, "tag", raw)
				continue
			}
		}

		if tag == TagCompatible {
			return r.fail(fmt.Errorf("%w: repeated %s record", ErrMalformedHeader, TagCompatible))
		}

		return Record{Tag: tag, Payload: payload}, nil
	}
}

// ReadAll decodes every record in the stream held in b
func ReadAll(b []byte, logger hclog.Logger) ([]Record, error) {
	r := NewReader(b, logger)

	var records []Record
	for {
		record, err := r.Next()
		if err != nil {
			if err == io.EOF {
				return records, nil
			}
			return nil, err
		}
		records = append(records, record)
	}
}

// ReadFile loads the file at path and decodes every record in it
func ReadFile(path string, logger hclog.Logger) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return ReadAll(b, logger)
}
