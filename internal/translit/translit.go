// Package translit converts Cyrillic, Arabic and accented Latin text into the
// Latin repertoire used on machine readable travel documents (ICAO Doc 9303).
package translit

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"

	"github.com/kozaktomas/mrzname/internal/script"
)

// Table is a single-rune substitution table usable as a transform.Transformer.
// Runes absent from the table pass through unchanged.
type Table struct {
	transform.NopResetter

	entries map[rune]string
	// foldCase resolves a lower-case rune through its capital entry and
	// lower-cases the replacement.
	foldCase bool
}

var (
	// LatinFold folds accented and ligature Latin capitals to ASCII.
	LatinFold = &Table{entries: latinTable}
	// CyrillicToLatin maps Cyrillic letters of either case.
	CyrillicToLatin = &Table{entries: cyrillicTable, foldCase: true}
	// ArabicToLatin maps Arabic letters, leaving the teh marbuta placeholder in place.
	ArabicToLatin = &Table{entries: arabicTable}
)

// Lookup returns the replacement for r and whether the table maps it.
func (t *Table) Lookup(r rune) (string, bool) {
	if s, ok := t.entries[r]; ok {
		return s, true
	}
	if !t.foldCase {
		return "", false
	}
	upper := unicode.ToUpper(r)
	if upper == r || unicode.ToLower(upper) != r {
		return "", false
	}
	if s, ok := t.entries[upper]; ok {
		return strings.ToLower(s), true
	}
	return "", false
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Transform implements transform.Transformer.
func (t *Table) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := rune(src[nSrc]), 1
		if r >= utf8.RuneSelf {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			r, size = utf8.DecodeRune(src[nSrc:])
		}

		if repl, ok := t.Lookup(r); ok {
			if nDst+len(repl) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], repl)
		} else {
			if nDst+size > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		}
		nSrc += size
	}
	return nDst, nSrc, nil
}

// Apply runs the table over s.
func (t *Table) Apply(s string) string {
	if s == "" {
		return s
	}
	result, _, err := transform.String(t, s)
	if err != nil {
		// Transform only fails on short buffers, which transform.String handles.
		return s
	}
	return result
}

// FoldLatin folds accented Latin capitals in s to ASCII.
func FoldLatin(s string) string {
	return LatinFold.Apply(s)
}

// Cyrillic transliterates Cyrillic letters in s, preserving case.
func Cyrillic(s string) string {
	return CyrillicToLatin.Apply(s)
}

// Arabic transliterates Arabic letters in s and resolves the word-final form
// of teh marbuta.
func Arabic(s string) string {
	return tehMarbuta(ArabicToLatin.Apply(s))
}

const (
	tehMarbutaMedial = "XTA"
	tehMarbutaFinal  = "XAH"
)

// tehMarbuta rewrites XTA to XAH when it ends a word: before a space, before
// a hyphen, or at the end of the string.
func tehMarbuta(s string) string {
	s = strings.ReplaceAll(s, tehMarbutaMedial+" ", tehMarbutaFinal+" ")
	s = strings.ReplaceAll(s, tehMarbutaMedial+"-", tehMarbutaFinal+"-")
	if strings.HasSuffix(s, tehMarbutaMedial) {
		s = strings.TrimSuffix(s, tehMarbutaMedial) + tehMarbutaFinal
	}
	return s
}

// ToLatin transliterates s according to its script. Cyrillic takes priority
// over Arabic; text in any other script is returned unchanged.
func ToLatin(s string) string {
	switch {
	case script.IsCyrillic(s):
		return Cyrillic(s)
	case script.IsArabic(s):
		return Arabic(s)
	default:
		return s
	}
}
