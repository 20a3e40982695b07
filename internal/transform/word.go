package transform

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/jung-kurt/gofpdf"
)

// text layout constants for the rendered PDF (points)
const (
	pageMargin       = 50.0
	fontSize         = 12.0
	lineHeight       = fontSize + 5
	paragraphSpacing = lineHeight * 0.5
)

// OLE compound file magic identifying the legacy binary .doc format
var oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

var paragraphSplitter = regexp.MustCompile(`\n\s*\n`)

// converts a DOCX document to a PDF of wrapped, paginated plain text
func WordToPDF(buf []byte) ([]byte, error) {
	text, err := ExtractWordText(buf)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyDocument
	}

	return renderTextPDF(sanitizeForPDF(text))
}

// extracts plain text from a DOCX container, detecting the legacy binary
// Word format up front so the caller gets an actionable error instead of
// a generic zip failure
func ExtractWordText(buf []byte) (string, error) {
	if bytes.HasPrefix(buf, oleMagic) {
		return "", ErrLegacyWordFormat
	}

	if len(buf) < 4 || buf[0] != 'P' || buf[1] != 'K' {
		return "", fmt.Errorf("%w: not a DOCX (zip) container", ErrCorruptInput)
	}

	doc, err := docx.Parse(bytes.NewReader(buf), int64(len(buf)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptInput, err)
	}

	var paragraphs []string

	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}

		text := paragraphText(para)
		if strings.TrimSpace(text) != "" {
			paragraphs = append(paragraphs, text)
		}
	}

	return strings.Join(paragraphs, "\n\n"), nil
}

// concatenates the text runs of one paragraph
func paragraphText(para *docx.Paragraph) string {
	var sb strings.Builder

	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}

		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				sb.WriteString(t.Text)
			}
		}
	}

	return sb.String()
}

// lays sanitized text out as wrapped paragraphs on letter-size pages,
// adding pages as vertical space runs out
func renderTextPDF(text string) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetFont("Helvetica", "", fontSize)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// the built-in fonts are cp1252; translate before measuring and
	// drawing so Latin-1 text keeps its glyphs
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageWidth, pageHeight := pdf.GetPageSize()
	maxWidth := pageWidth - 2*pageMargin
	y := pageMargin + fontSize

	drawLine := func(line string) {
		if y > pageHeight-pageMargin {
			pdf.AddPage()
			y = pageMargin + fontSize
		}

		pdf.Text(pageMargin, y, line)
		y += lineHeight
	}

	paragraphs := splitParagraphs(text)

	for i, paragraph := range paragraphs {
		current := ""

		for _, word := range strings.Fields(tr(paragraph)) {
			test := word
			if current != "" {
				test = current + " " + word
			}

			if pdf.GetStringWidth(test) > maxWidth && current != "" {
				drawLine(current)
				current = word
			} else {
				current = test
			}
		}

		if current != "" {
			drawLine(current)
		}

		if i < len(paragraphs)-1 {
			y += paragraphSpacing
		}
	}

	if pdf.Err() {
		return nil, fmt.Errorf("failed to render PDF: %w", pdf.Error())
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}

	return out.Bytes(), nil
}

// splits text on blank lines into non-empty paragraphs
func splitParagraphs(text string) []string {
	var paragraphs []string

	for _, p := range paragraphSplitter.Split(text, -1) {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}

	return paragraphs
}
