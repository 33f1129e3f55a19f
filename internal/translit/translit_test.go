package translit

import (
	"io"
	"strings"
	"testing"

	"golang.org/x/text/transform"
)

func TestCyrillic(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"ПЕТРОВ", "PETROV"},
		{"Петров", "Petrov"},
		{"Иван Петров", "Ivan Petrov"},
		{"Щука", "SHCHuka"},
		{"Юлия", "IUliia"},
		{"Ёлка", "Elka"},
		{"Ґалина", "Galina"},
		{"Ivan", "Ivan"},
		{"Љубиша-Њ", "LJubisha-NJ"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := Cyrillic(tt.input)
			if result != tt.expected {
				t.Errorf("Cyrillic(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestCyrillicLowerCaseMatchesUpperCase(t *testing.T) {
	for r, repl := range cyrillicTable {
		lower := strings.ToLower(string(r))
		if lower == string(r) {
			continue
		}
		got := Cyrillic(lower)
		if got != strings.ToLower(repl) {
			t.Errorf("Cyrillic(%q) = %q, want %q", lower, got, strings.ToLower(repl))
		}
	}
}

func TestCyrillicIgnoresCompatibilityLowerCase(t *testing.T) {
	// U+1C80 upper-cases to В but is not its lower-case form.
	if got := Cyrillic("ᲀ"); got != "ᲀ" {
		t.Errorf("Cyrillic(U+1C80) = %q, want unchanged", got)
	}
}

func TestArabic(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"word-final teh marbuta", "فاطمة", "FAXTTMXAH"},
		{"teh marbuta before space", "فاطمة علي", "FAXTTMXAH ELY"},
		{"teh marbuta before hyphen", "فاطمة-علي", "FAXTTMXAH-ELY"},
		{"medial teh marbuta", "ةب", "XTAB"},
		{"plain letters", "محمد", "MXHMD"},
		{"digits pass through", "علي ١٢", "ELY ١٢"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Arabic(tt.input)
			if result != tt.expected {
				t.Errorf("Arabic(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFoldLatin(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"MÜLLER", "MUELLER"},
		{"ÅSA", "AASA"},
		{"O'BRIEN", "OBRIEN"},
		{"STRAẞE", "STRASSE"},
		{"ŁÓDŹ", "LODZ"},
		{"ıI", "II"},
		{"müller", "müller"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := FoldLatin(tt.input)
			if result != tt.expected {
				t.Errorf("FoldLatin(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestToLatin(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Петров", "Petrov"},
		{"علي", "ELY"},
		{"Петров علي", "Petrov علي"},
		{"李小龙", "李小龙"},
		{"Smith", "Smith"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ToLatin(tt.input)
			if result != tt.expected {
				t.Errorf("ToLatin(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTableTransformLongInput(t *testing.T) {
	input := strings.Repeat("Щ", 5000)
	r := transform.NewReader(strings.NewReader(input), CyrillicToLatin)
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading transformed input: %v", err)
	}
	if string(out) != strings.Repeat("SHCH", 5000) {
		t.Errorf("unexpected output length %d", len(out))
	}
}

func TestTableLookup(t *testing.T) {
	if _, ok := LatinFold.Lookup('a'); ok {
		t.Error("expected plain ASCII to be unmapped")
	}
	if s, ok := LatinFold.Lookup('\''); !ok || s != "" {
		t.Errorf("Lookup(apostrophe) = %q, %v, want empty replacement", s, ok)
	}
	if LatinFold.Len() != 97 || CyrillicToLatin.Len() != 48 || ArabicToLatin.Len() != 66 {
		t.Errorf("unexpected table sizes: %d, %d, %d", LatinFold.Len(), CyrillicToLatin.Len(), ArabicToLatin.Len())
	}
}
