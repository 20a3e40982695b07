package transform

import "errors"

// transformer failure modes; the dispatcher and HTTP layer match on
// these with errors.Is to shape user-facing messages
var (
	// the requested output format has no encoder
	ErrUnsupportedFormat = errors.New("unsupported output format")

	// the input buffer is not decodable as the declared format
	ErrCorruptInput = errors.New("could not decode input file")

	// the input is the legacy binary Word format, not the zip-based one
	ErrLegacyWordFormat = errors.New("old .doc format files are not supported, please convert the file to .docx format first")

	// the document parsed but yielded no text
	ErrEmptyDocument = errors.New("document appears to be empty or no text could be extracted")

	// the PDF has no text layer (scanned or image-only)
	ErrNoExtractableText = errors.New("could not extract text from PDF, the PDF might be scanned or image-based")

	// the PDF could not be parsed at all
	ErrCorruptPDF = errors.New("could not parse PDF file, it might be corrupted")
)
