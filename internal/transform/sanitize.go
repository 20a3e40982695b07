package transform

import "strings"

// common typographic Unicode mapped to ASCII the built-in PDF fonts can
// encode; anything else outside the printable Latin-1 range is dropped
var charReplacements = map[rune]string{
	'→': "->",        // →
	'←': "<-",        // ←
	'↑': "^",         // ↑
	'↓': "v",         // ↓
	'•': "*",         // •
	'–': "-",         // –
	'—': "--",        // —
	'“': `"`,         // left double quote
	'”': `"`,         // right double quote
	'‘': "'",         // left single quote
	'’': "'",         // right single quote
	'…': "...",       // …
	'€': "EUR",       // €
	'£': "GBP",       // £
	'¥': "JPY",       // ¥
	'©': "(c)",       // ©
	'®': "(R)",       // ®
	'™': "(TM)",      // ™
	'°': " degrees",  // °
	'±': "+/-",       // ±
	'×': "x",         // ×
	'÷': "/",         // ÷
}

// reduces text to the subset the PDF renderer's WinAnsi fonts can draw,
// preserving newlines so paragraph structure survives
func sanitizeForPDF(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))

	for _, r := range text {
		if repl, ok := charReplacements[r]; ok {
			sb.WriteString(repl)
			continue
		}

		switch {
		case r == '\n':
			sb.WriteRune('\n')
		case r == '\r':
			// normalized away; \r\n pairs collapse to the \n that follows
		case r >= 0x20 && r <= 0x7E:
			sb.WriteRune(r)
		case r >= 0xA0 && r <= 0xFF:
			sb.WriteRune(r)
		}
	}

	return sb.String()
}
