package dispatch

import (
	"errors"

	"codeberg.org/savant/server/internal/format"
)

// maximum size of a single uploaded payload
const MaxFileSize = 10 << 20 // 10 MiB

// the transformer operation a (from, to) pair maps onto
type Operation int

const (
	OpNone Operation = iota
	OpWordToPDF
	OpPDFToWord
	OpPDFToImage
	OpImageToPDF
	OpImagesToPDF
	OpImageReencode
)

// one uploaded payload
type File struct {
	Name string
	Data []byte
}

// a single conversion attempt: declared formats plus one or more payloads
type Request struct {
	From  format.Format
	To    format.Format
	Files []File
}

// the transformed output plus response metadata
type Result struct {
	Output   []byte
	MIMEType string
	FileName string
}

// validation failures; surfaced as 400s and never reach a transformer
var (
	ErrNoPayload             = errors.New("at least one file is required")
	ErrFileTooLarge          = errors.New("file size exceeds 10MB limit")
	ErrUnsupportedConversion = errors.New("conversion not supported")
)

// reports whether the error is a request-validation failure rather than
// a transformation failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNoPayload) ||
		errors.Is(err, ErrFileTooLarge) ||
		errors.Is(err, ErrUnsupportedConversion)
}
