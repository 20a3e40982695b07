package transform

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fumiama/go-docx"
	"github.com/jung-kurt/gofpdf"
)

// builds a PDF with the given text drawn on one page each; pages with
// empty text stay blank
func testPDF(t *testing.T, pages ...string) []byte {
	t.Helper()

	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetFont("Helvetica", "", 12)

	for _, text := range pages {
		pdf.AddPage()

		if text != "" {
			pdf.Text(50, 62, text)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("failed to build test PDF: %v", err)
	}

	return buf.Bytes()
}

func TestExtractPDFText(t *testing.T) {
	src := testPDF(t, "Hello world", "Second page")

	text, err := ExtractPDFText(src)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if !strings.Contains(text, "Hello world") {
		t.Errorf("text %q missing first page content", text)
	}

	if !strings.Contains(text, "Second page") {
		t.Errorf("text %q missing second page content", text)
	}

	if !strings.Contains(text, pageBreakMarker) {
		t.Errorf("text %q missing page break marker", text)
	}
}

func TestExtractPDFTextScannedPDF(t *testing.T) {
	// a page with no text layer stands in for a scanned document
	_, err := ExtractPDFText(testPDF(t, ""))
	if !errors.Is(err, ErrNoExtractableText) {
		t.Errorf("expected ErrNoExtractableText, got: %v", err)
	}
}

func TestExtractPDFTextCorruptInput(t *testing.T) {
	_, err := ExtractPDFText([]byte("%PDF-1.7 but truncated nonsense"))
	if !errors.Is(err, ErrCorruptPDF) {
		t.Errorf("expected ErrCorruptPDF, got: %v", err)
	}
}

func TestPDFToWord(t *testing.T) {
	src := testPDF(t, "Hello world", "Second page")

	out, err := PDFToWord(src)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	// DOCX is a zip container
	if !bytes.HasPrefix(out, []byte("PK")) {
		t.Fatal("output is not a zip-based DOCX")
	}

	doc, err := docx.Parse(bytes.NewReader(out), int64(len(out)))
	if err != nil {
		t.Fatalf("output DOCX not parseable: %v", err)
	}

	var sb strings.Builder

	for _, item := range doc.Document.Body.Items {
		if para, ok := item.(*docx.Paragraph); ok {
			sb.WriteString(paragraphText(para))
			sb.WriteString("\n")
		}
	}

	text := sb.String()

	if !strings.Contains(text, "Hello world") {
		t.Errorf("document text %q missing source text", text)
	}

	if !strings.Contains(text, pageBreakMarker) {
		t.Errorf("document text %q missing page break marker", text)
	}
}

func TestPDFToWordScannedPDF(t *testing.T) {
	_, err := PDFToWord(testPDF(t, ""))
	if !errors.Is(err, ErrNoExtractableText) {
		t.Errorf("expected ErrNoExtractableText, got: %v", err)
	}
}

func TestExtractPageTextGroupsLines(t *testing.T) {
	// two fragments at the same height join into one line; a third at a
	// clearly different height starts a new one
	src := testPDF(t, "left right")

	text, err := ExtractPDFText(src)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if strings.Contains(text, "\nright") {
		t.Errorf("fragments on one line were split: %q", text)
	}
}
