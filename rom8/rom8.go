/*
Package rom8 implements the ROM8 container format used to bundle a calculator
firmware image with the artwork, hitboxes and key tables an emulator needs.

A file is a stream of records, each an 8-byte little-endian header holding a
tag and a payload length followed by the payload itself. The first record
declares the compatibility token of the writer and the last record is an empty
end record.
*/
package rom8

import "errors"

const (
	// Extension is the conventional file extension used
	Extension = ".rom8"
)

// These are the errors returned when decoding or encoding
var (
	ErrMalformedHeader      = errors.New("rom8: malformed record header")
	ErrTruncatedPayload     = errors.New("rom8: truncated payload")
	ErrUnknownCompatibility = errors.New("rom8: unknown compatibility")
	ErrInvalidMatrixAddress = errors.New("rom8: invalid key matrix address")
	ErrMalformedProperty    = errors.New("rom8: malformed property")
	ErrTruncatedRecord      = errors.New("rom8: truncated record")
	ErrInvalidName          = errors.New("rom8: invalid key name")
	ErrMissingAsset         = errors.New("rom8: missing asset")
	ErrClosed               = errors.New("rom8: write to closed stream")
	ErrReservedTag          = errors.New("rom8: reserved tag")
	ErrOutOfRange           = errors.New("rom8: value out of 16-bit range")
)
