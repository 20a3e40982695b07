package dispatch

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"codeberg.org/savant/server/internal/format"
	"github.com/fumiama/go-docx"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		from     format.Format
		to       format.Format
		payloads int
		want     Operation
	}{
		{"docx to pdf", format.Docx, format.PDF, 1, OpWordToPDF},
		{"legacy doc to pdf", format.Doc, format.PDF, 1, OpWordToPDF},
		{"pdf to docx", format.PDF, format.Docx, 1, OpPDFToWord},
		{"pdf to jpg", format.PDF, format.Jpg, 1, OpPDFToImage},
		{"pdf to png", format.PDF, format.Png, 1, OpPDFToImage},
		{"single image to pdf", format.Image, format.PDF, 1, OpImageToPDF},
		{"single jpg to pdf", format.Jpg, format.PDF, 1, OpImageToPDF},
		{"multiple images to pdf", format.Image, format.PDF, 3, OpImagesToPDF},
		{"two pngs to pdf", format.Png, format.PDF, 2, OpImagesToPDF},
		{"png to webp", format.Png, format.Webp, 1, OpImageReencode},
		{"generic image to gif", format.Image, format.Gif, 1, OpImageReencode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.from, tt.to, tt.payloads)
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}

			if got != tt.want {
				t.Errorf("Resolve(%s, %s, %d) = %v, want %v", tt.from, tt.to, tt.payloads, got, tt.want)
			}
		})
	}
}

func TestResolveUnsupportedPairs(t *testing.T) {
	tests := []struct {
		name string
		from format.Format
		to   format.Format
	}{
		{"pdf to webp", format.PDF, format.Webp},
		{"pdf to gif", format.PDF, format.Gif},
		{"docx to jpg", format.Docx, format.Jpg},
		{"docx to docx", format.Docx, format.Docx},
		{"pdf to pdf", format.PDF, format.PDF},
		{"image to docx", format.Image, format.Docx},
		{"unknown source", format.Unknown, format.PDF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.from, tt.to, 1)
			if !errors.Is(err, ErrUnsupportedConversion) {
				t.Errorf("expected ErrUnsupportedConversion, got: %v", err)
			}
		})
	}
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 10, G: 120, B: 220, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}

	return buf.Bytes()
}

func testDocx(t *testing.T, text string) []byte {
	t.Helper()

	doc := docx.New().WithDefaultTheme()
	doc.AddParagraph().AddText(text)

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		t.Fatalf("failed to build test DOCX: %v", err)
	}

	return buf.Bytes()
}

func TestConvertNoPayload(t *testing.T) {
	d := NewDispatcher()

	_, err := d.Convert(Request{From: format.Image, To: format.PDF})
	if !errors.Is(err, ErrNoPayload) {
		t.Errorf("expected ErrNoPayload, got: %v", err)
	}
}

func TestConvertFileTooLarge(t *testing.T) {
	d := NewDispatcher()

	_, err := d.Convert(Request{
		From:  format.Image,
		To:    format.Jpg,
		Files: []File{{Name: "huge.png", Data: make([]byte, MaxFileSize+1)}},
	})
	if !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("expected ErrFileTooLarge, got: %v", err)
	}
}

func TestConvertUnsupportedPair(t *testing.T) {
	d := NewDispatcher()

	_, err := d.Convert(Request{
		From:  format.Docx,
		To:    format.Jpg,
		Files: []File{{Name: "notes.docx", Data: testDocx(t, "hello")}},
	})
	if !errors.Is(err, ErrUnsupportedConversion) {
		t.Errorf("expected ErrUnsupportedConversion, got: %v", err)
	}
}

func TestConvertReencodeNamesOutput(t *testing.T) {
	d := NewDispatcher()

	res, err := d.Convert(Request{
		From:  format.Png,
		To:    format.Jpg,
		Files: []File{{Name: "photo.png", Data: testPNG(t, 16, 16)}},
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if res.FileName != "photo.jpg" {
		t.Errorf("file name = %q, want %q", res.FileName, "photo.jpg")
	}

	if res.MIMEType != "image/jpeg" {
		t.Errorf("mime type = %q, want %q", res.MIMEType, "image/jpeg")
	}

	if len(res.Output) == 0 {
		t.Error("expected non-empty output")
	}
}

func TestConvertMultipleImagesCombined(t *testing.T) {
	d := NewDispatcher()

	res, err := d.Convert(Request{
		From: format.Image,
		To:   format.PDF,
		Files: []File{
			{Name: "a.png", Data: testPNG(t, 20, 20)},
			{Name: "b.png", Data: testPNG(t, 20, 20)},
		},
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if res.FileName != "combined.pdf" {
		t.Errorf("file name = %q, want %q", res.FileName, "combined.pdf")
	}

	if !bytes.HasPrefix(res.Output, []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
}

func TestConvertWordToPDF(t *testing.T) {
	d := NewDispatcher()

	res, err := d.Convert(Request{
		From:  format.Docx,
		To:    format.PDF,
		Files: []File{{Name: "report.docx", Data: testDocx(t, "Quarterly report")}},
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if res.FileName != "report.pdf" {
		t.Errorf("file name = %q, want %q", res.FileName, "report.pdf")
	}

	if !bytes.HasPrefix(res.Output, []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
}

func TestReplaceExt(t *testing.T) {
	tests := []struct {
		in   string
		ext  string
		want string
	}{
		{"photo.png", "jpg", "photo.jpg"},
		{"archive.tar.gz", "pdf", "archive.tar.pdf"},
		{"noext", "pdf", "noext.pdf"},
		{"", "pdf", "converted.pdf"},
		{".hidden", "png", ".hidden.png"},
	}

	for _, tt := range tests {
		if got := replaceExt(tt.in, tt.ext); got != tt.want {
			t.Errorf("replaceExt(%q, %q) = %q, want %q", tt.in, tt.ext, got, tt.want)
		}
	}
}
