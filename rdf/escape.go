package rdf

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// escapeString escapes a literal's lexical form for a double-quoted
// Turtle/N-Triples string.
func escapeString(value string) string {
	if !needsStringEscape(value) {
		return value
	}
	var b strings.Builder
	b.Grow(len(value) + 8)
	for _, r := range value {
		switch r {
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\f':
			b.WriteString(`\f`)
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsStringEscape(value string) bool {
	for i := 0; i < len(value); i++ {
		ch := value[i]
		if ch < 0x20 || ch == 0x7f || ch == '"' || ch == '\\' {
			return true
		}
	}
	return false
}

// escapeIRI escapes the characters IRIREF does not allow.
func escapeIRI(value string) string {
	var b *strings.Builder
	for i, r := range value {
		if !iriNeedsEscape(r) {
			if b != nil {
				b.WriteRune(r)
			}
			continue
		}
		if b == nil {
			b = &strings.Builder{}
			b.Grow(len(value) + 8)
			b.WriteString(value[:i])
		}
		fmt.Fprintf(b, `\u%04X`, r)
	}
	if b == nil {
		return value
	}
	return b.String()
}

func iriNeedsEscape(r rune) bool {
	if r <= 0x20 {
		return true
	}
	switch r {
	case '<', '>', '"', '{', '}', '|', '^', '`', '\\':
		return true
	}
	return false
}

// XML escaping differs between attribute values and element content:
// attribute-value normalization would turn raw whitespace into spaces, so
// tab, newline and carriage return become character references there.
var (
	xmlAttrReplacer = strings.NewReplacer(
		`&`, "&amp;",
		`<`, "&lt;",
		`>`, "&gt;",
		`"`, "&quot;",
		"\t", "&#9;",
		"\n", "&#10;",
		"\r", "&#13;",
	)
	xmlTextReplacer = strings.NewReplacer(
		`&`, "&amp;",
		`<`, "&lt;",
		`>`, "&gt;",
		"\r", "&#13;",
	)
)

func escapeXMLAttr(value string) string { return xmlAttrReplacer.Replace(value) }

func escapeXMLText(value string) string { return xmlTextReplacer.Replace(value) }

// validXMLChars reports whether every rune of value is allowed in XML 1.0.
func validXMLChars(value string) bool {
	for i := 0; i < len(value); {
		r, size := utf8.DecodeRuneInString(value[i:])
		if r == utf8.RuneError && size == 1 {
			return false
		}
		if !isXMLChar(r) {
			return false
		}
		i += size
	}
	return true
}

func isXMLChar(r rune) bool {
	switch {
	case r == 0x9 || r == 0xA || r == 0xD:
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}
