package dispatch

import (
	"fmt"
	"strings"

	"codeberg.org/savant/server/internal/format"
	"codeberg.org/savant/server/internal/transform"
)

// routes conversion requests onto the transformer functions
type Dispatcher struct{}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// maps a (from, to) pair onto an operation; earlier rules win, so
// pdf -> docx is extraction even though pdf decodes as no image type
func Resolve(from, to format.Format, payloads int) (Operation, error) {
	switch {
	case (from == format.Docx || from == format.Doc) && to == format.PDF:
		return OpWordToPDF, nil
	case from == format.PDF && to == format.Docx:
		return OpPDFToWord, nil
	case from == format.PDF && (to == format.Jpg || to == format.Png):
		return OpPDFToImage, nil
	case from.IsImage() && to == format.PDF:
		if payloads > 1 {
			return OpImagesToPDF, nil
		}
		return OpImageToPDF, nil
	case from.IsImage() && to.IsRaster():
		return OpImageReencode, nil
	}

	return OpNone, fmt.Errorf("%w: %s to %s", ErrUnsupportedConversion, from, to)
}

// validates the request, resolves the operation and runs it
func (d *Dispatcher) Convert(req Request) (*Result, error) {
	if len(req.Files) == 0 {
		return nil, ErrNoPayload
	}

	for _, f := range req.Files {
		if int64(len(f.Data)) > MaxFileSize {
			return nil, fmt.Errorf("%w: %s", ErrFileTooLarge, f.Name)
		}
	}

	op, err := Resolve(req.From, req.To, len(req.Files))
	if err != nil {
		return nil, err
	}

	first := req.Files[0]

	switch op {
	case OpWordToPDF:
		out, err := transform.WordToPDF(first.Data)
		if err != nil {
			return nil, err
		}

		return &Result{Output: out, MIMEType: format.PDF.MIME(), FileName: replaceExt(first.Name, format.PDF.Ext())}, nil

	case OpPDFToWord:
		out, err := transform.PDFToWord(first.Data)
		if err != nil {
			return nil, err
		}

		return &Result{Output: out, MIMEType: format.Docx.MIME(), FileName: replaceExt(first.Name, format.Docx.Ext())}, nil

	case OpPDFToImage:
		out, err := transform.PDFToImage(first.Data, req.To)
		if err != nil {
			return nil, err
		}

		return &Result{Output: out, MIMEType: req.To.MIME(), FileName: replaceExt(first.Name, req.To.Ext())}, nil

	case OpImageToPDF:
		out, err := transform.ImageToPDF(first.Data)
		if err != nil {
			return nil, err
		}

		return &Result{Output: out, MIMEType: format.PDF.MIME(), FileName: replaceExt(first.Name, format.PDF.Ext())}, nil

	case OpImagesToPDF:
		payloads := make([][]byte, 0, len(req.Files))
		for _, f := range req.Files {
			payloads = append(payloads, f.Data)
		}

		out, err := transform.ImagesToPDF(payloads)
		if err != nil {
			return nil, err
		}

		return &Result{Output: out, MIMEType: format.PDF.MIME(), FileName: "combined.pdf"}, nil

	case OpImageReencode:
		out, err := transform.ReencodeImage(first.Data, req.To)
		if err != nil {
			return nil, err
		}

		return &Result{Output: out, MIMEType: req.To.MIME(), FileName: replaceExt(first.Name, req.To.Ext())}, nil
	}

	return nil, fmt.Errorf("%w: %s to %s", ErrUnsupportedConversion, req.From, req.To)
}

// swaps the extension of an uploaded file name for the output one
func replaceExt(name, ext string) string {
	base := strings.TrimSpace(name)
	if base == "" {
		return "converted." + ext
	}

	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}

	return base + "." + ext
}
