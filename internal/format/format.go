// Package format models the closed set of file formats the conversion
// pipeline understands. Declared format tags from the wire are resolved
// into Format values exactly once at the HTTP boundary; everything past
// the boundary matches on the enumeration, never on strings.
package format

import "strings"

// a file format the pipeline can accept or produce
type Format int

const (
	Unknown Format = iota
	PDF
	Docx
	Doc
	// generic "image" / "image/*" declaration where the concrete raster
	// kind is discovered by decoding
	Image
	Jpg
	Png
	Webp
	Gif
)

// resolves a declared format tag ("pdf", "docx", "image/png", "jpg", ...)
func Parse(tag string) (Format, bool) {
	switch t := strings.ToLower(strings.TrimSpace(tag)); {
	case t == "pdf":
		return PDF, true
	case t == "docx":
		return Docx, true
	case t == "doc":
		return Doc, true
	case t == "image" || strings.HasPrefix(t, "image/"):
		return Image, true
	case t == "jpg" || t == "jpeg":
		return Jpg, true
	case t == "png":
		return Png, true
	case t == "webp":
		return Webp, true
	case t == "gif":
		return Gif, true
	default:
		return Unknown, false
	}
}

// reports whether the format denotes any image input
func (f Format) IsImage() bool {
	switch f {
	case Image, Jpg, Png, Webp, Gif:
		return true
	default:
		return false
	}
}

// reports whether the format is a concrete raster output kind
func (f Format) IsRaster() bool {
	switch f {
	case Jpg, Png, Webp, Gif:
		return true
	default:
		return false
	}
}

// returns the canonical tag for the format
func (f Format) String() string {
	switch f {
	case PDF:
		return "pdf"
	case Docx:
		return "docx"
	case Doc:
		return "doc"
	case Image:
		return "image"
	case Jpg:
		return "jpg"
	case Png:
		return "png"
	case Webp:
		return "webp"
	case Gif:
		return "gif"
	default:
		return "unknown"
	}
}

// returns the output filename extension for the format
func (f Format) Ext() string {
	return f.String()
}

// returns the MIME type served for the format
func (f Format) MIME() string {
	switch f {
	case PDF:
		return "application/pdf"
	case Docx:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case Doc:
		return "application/msword"
	case Jpg:
		return "image/jpeg"
	case Png:
		return "image/png"
	case Webp:
		return "image/webp"
	case Gif:
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}
