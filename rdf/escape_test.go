package rdf

import "testing"

func TestEscapeString(t *testing.T) {
	cases := map[string]string{
		"plain":          "plain",
		"a\"b":           `a\"b`,
		`back\slash`:     `back\\slash`,
		"t\tn\nr\r":      `t\tn\nr\r`,
		"b\bf\f":         `b\bf\f`,
		"nul\x00del\x7f": `nul\u0000del\u007F`,
		"unicode é ✓":    "unicode é ✓",
	}
	for in, want := range cases {
		if got := escapeString(in); got != want {
			t.Fatalf("escapeString(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEscapeIRI(t *testing.T) {
	cases := map[string]string{
		"http://ex.org/a":    "http://ex.org/a",
		"http://ex.org/a b":  `http://ex.org/a\u0020b`,
		"http://ex.org/{x}":  `http://ex.org/\u007Bx\u007D`,
		"http://ex.org/é":    "http://ex.org/é",
		"http://ex.org/a|^`": "http://ex.org/a\\u007C\\u005E\\u0060",
	}
	for in, want := range cases {
		if got := escapeIRI(in); got != want {
			t.Fatalf("escapeIRI(%q) = %q, want %q", in, got, want)
		}
	}
}
