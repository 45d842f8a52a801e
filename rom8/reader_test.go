package rom8

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(tag uint32, payload string) []byte {
	b := make([]byte, 8, 8+len(payload))
	binary.LittleEndian.PutUint32(b[0:], tag)
	binary.LittleEndian.PutUint32(b[4:], uint32(len(payload)))
	return append(b, payload...)
}

func stream(records ...[]byte) []byte {
	return bytes.Join(records, nil)
}

func TestReadAll(t *testing.T) {
	rom := "\x00\x01\xfe\xff"
	b := stream(
		record(1, "pitust,3"),
		record(2, "model=X"),
		record(3, rom),
		record(0, ""),
	)

	records, err := ReadAll(b, nil)
	require.NoError(t, err)
	assert.Equal(t, []Record{
		{TagProp, []byte("model=X")},
		{TagROM, []byte(rom)},
	}, records)
}

func TestWriterRoundTrip(t *testing.T) {
	want := []Record{
		{TagProp, []byte("writer=test")},
		{TagROM, []byte{0, 0, 0, 0, 1}},
		{TagFaceGUIKeys, []byte{}},
		{TagCalcType, []byte{byte(CWI | Emu)}},
		{Tag(42), []byte("future")},
	}

	b := new(bytes.Buffer)
	w, err := NewWriter(b)
	require.NoError(t, err)
	for _, r := range want {
		require.NoError(t, w.WriteRecord(r))
	}
	require.NoError(t, w.Close())

	got, err := ReadAll(b.Bytes(), nil)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReaderErrors(t *testing.T) {
	tables := map[string]struct {
		b   []byte
		err error
	}{
		"empty": {
			nil,
			ErrMalformedHeader,
		},
		"short header": {
			[]byte{1, 0, 0},
			ErrMalformedHeader,
		},
		"not compatible first": {
			stream(record(2, "model=X"), record(0, "")),
			ErrMalformedHeader,
		},
		"unknown compatible": {
			stream(record(1, "pitust,9"), record(3, "rom"), record(0, "")),
			ErrUnknownCompatibility,
		},
		"truncated payload": {
			stream(record(1, Compat), record(3, "rom")[:9]),
			ErrTruncatedPayload,
		},
		"missing end": {
			stream(record(1, Compat), record(3, "rom")),
			ErrMalformedHeader,
		},
		"end with payload": {
			stream(record(1, Compat), record(0, "x")),
			ErrMalformedHeader,
		},
		"repeated compatible": {
			stream(record(1, Compat), record(1, Compat), record(0, "")),
			ErrMalformedHeader,
		},
	}

	for name, table := range tables {
		t.Run(name, func(t *testing.T) {
			_, err := ReadAll(table.b, nil)
			assert.ErrorIs(t, err, table.err)
		})
	}
}

func TestReaderUnknownCompatStops(t *testing.T) {
	r := NewReader(stream(record(1, "other,1"), record(3, "rom"), record(0, "")), nil)

	_, err := r.Next()
	assert.ErrorIs(t, err, ErrUnknownCompatibility)

	// The error is sticky, nothing after the token is decoded
	_, err = r.Next()
	assert.ErrorIs(t, err, ErrUnknownCompatibility)
}

func TestReaderLegacy(t *testing.T) {
	logs := new(bytes.Buffer)
	logger := hclog.New(&hclog.LoggerOptions{
		Output: logs,
		Level:  hclog.Warn,
	})

	r := NewReader(stream(
		record(1, "pitust,1"),
		record(3, "rom"),
		record(99, "skip"),
		record(6, "skip"),
		record(9, "\x06"),
		record(0, ""),
	), logger)

	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, Record{TagROM, []byte("rom")}, rec)
	assert.Equal(t, "pitust,1", r.Compat())

	rec, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, Record{TagCalcType, []byte{6}}, rec)

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
	_, err = r.Next()
	assert.Equal(t, io.EOF, err)

	assert.Contains(t, logs.String(), "using legacy compatibility")
	assert.Contains(t, logs.String(), "tag=99")
	assert.Contains(t, logs.String(), "tag=6")
}

func TestReaderIdentityCompat(t *testing.T) {
	records, err := ReadAll(stream(
		record(1, "pitust,2"),
		record(6, "\x57\x00\x6f\x00\x60\x00\x1f\x00\x06\x00"),
		record(0, ""),
	), nil)
	require.NoError(t, err)
	assert.Equal(t, []Record{{TagFaceDisplayBounds, []byte("\x57\x00\x6f\x00\x60\x00\x1f\x00\x06\x00")}}, records)
}
