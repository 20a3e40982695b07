package transform

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"
)

// fragments whose vertical positions differ by no more than this many
// PDF units belong to the same visual line
const lineTolerance = 0.5

// marker inserted between pages in the extracted text and carried into
// the generated document
const pageBreakMarker = "--- Page Break ---"

// converts a PDF's text layer into a paragraph-structured DOCX
func PDFToWord(buf []byte) ([]byte, error) {
	text, err := ExtractPDFText(buf)
	if err != nil {
		return nil, err
	}

	return buildDocx(text)
}

// extracts text from a PDF preserving reading order: fragments are
// sorted by vertical position per page, fragments within a small
// vertical tolerance are joined into one line with single spaces, and
// pages are joined with an explicit page-break marker
func ExtractPDFText(buf []byte) (text string, err error) {
	// the parser panics on some malformed cross-reference tables; map
	// that to a typed error instead of taking the request down
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrCorruptPDF, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(buf), int64(len(buf)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptPDF, err)
	}

	var pages []string

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		if pageText := extractPageText(page); pageText != "" {
			pages = append(pages, pageText)
		}
	}

	full := strings.TrimSpace(strings.Join(pages, "\n\n"+pageBreakMarker+"\n\n"))
	if full == "" {
		return "", ErrNoExtractableText
	}

	return full, nil
}

// reassembles one page's text fragments into lines
func extractPageText(page pdf.Page) string {
	frags := page.Content().Text
	if len(frags) == 0 {
		return ""
	}

	// PDF user space has its origin bottom-left, so larger Y means
	// higher on the page; descending Y is reading order
	sort.SliceStable(frags, func(i, j int) bool {
		return frags[i].Y > frags[j].Y
	})

	var lines []string

	var current []string
	currentY := frags[0].Y

	flush := func() {
		if len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
			current = current[:0]
		}
	}

	for _, frag := range frags {
		if frag.S == "" {
			continue
		}

		if math.Abs(frag.Y-currentY) > lineTolerance {
			flush()
			currentY = frag.Y
		}

		current = append(current, frag.S)
	}

	flush()

	return strings.Join(lines, "\n")
}

// wraps extracted text in a minimal DOCX container, one paragraph per line
func buildDocx(text string) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	for _, line := range strings.Split(text, "\n") {
		para := doc.AddParagraph()

		if line = strings.TrimSpace(line); line != "" {
			para.AddText(line).Size("24") // 12pt in half-points
		}
	}

	var out bytes.Buffer
	if _, err := doc.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("failed to write DOCX: %w", err)
	}

	return out.Bytes(), nil
}
