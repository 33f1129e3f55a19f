// Package mrz cleans names into the upper-case ASCII form printed in the
// machine readable zone of travel documents.
package mrz

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/kozaktomas/mrzname/internal/translit"
)

// CaseOrder selects when upper-casing happens relative to the Latin fold.
type CaseOrder int

const (
	// UpperFirst upper-cases before folding, so lower-case accented letters
	// fold to ASCII as well.
	UpperFirst CaseOrder = iota
	// FoldFirst folds before upper-casing. Lower-case accented letters come
	// out as accented capitals, which a second Clean then folds, so this
	// order does not guarantee Clean(Clean(x)) == Clean(x).
	FoldFirst
)

func (o CaseOrder) String() string {
	if o == FoldFirst {
		return "legacy"
	}
	return "upper-first"
}

// ParseCaseOrder parses "upper-first" or "legacy". Empty selects UpperFirst.
func ParseCaseOrder(s string) (CaseOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "upper-first":
		return UpperFirst, nil
	case "legacy", "fold-first":
		return FoldFirst, nil
	default:
		return UpperFirst, fmt.Errorf("unknown case order %q", s)
	}
}

// quoteMarks are deleted from names: apostrophes, quotation marks, accents
// and modifier letters used as apostrophes in romanized names.
var quoteMarks = runes.Predicate(func(r rune) bool {
	switch r {
	case '\'', '‘', '’', '`', '´',
		'ʼ', 'ʻ', 'ʽ', 'ʾ', 'ʿ',
		'ˈ', 'ˊ', 'ˋ',
		'"', '“', '”':
		return true
	}
	return false
})

// Cleaner turns names into MRZ form. The zero value uses UpperFirst.
type Cleaner struct {
	Order CaseOrder
}

// maxPasses bounds the number of cleaning passes.
const maxPasses = 4

// Clean applies the Latin fold table, deletes quote marks, collapses
// whitespace and upper-cases the result. With UpperFirst the result is stable
// under Clean: passes repeat until a pass leaves its input unchanged.
func (c Cleaner) Clean(name string) string {
	if name == "" {
		return ""
	}
	if c.Order == FoldFirst {
		return cleanPass(transform.Chain(translit.LatinFold, runes.Remove(quoteMarks)), name)
	}

	// Quotes go before composition so a mark between a letter and its
	// combining accent cannot leave an uncomposed pair, and again after
	// upper-casing, which can produce a modifier apostrophe (ŉ -> ʼN).
	t := transform.Chain(
		runes.Remove(quoteMarks),
		norm.NFC,
		cases.Upper(language.Und),
		norm.NFC,
		translit.LatinFold,
		runes.Remove(quoteMarks),
	)
	cleaned := name
	for range maxPasses {
		next := cleanPass(t, cleaned)
		if next == cleaned {
			break
		}
		cleaned = next
	}
	return cleaned
}

func cleanPass(t transform.Transformer, name string) string {
	cleaned, _, err := transform.String(t, name)
	if err != nil {
		cleaned = name
	}
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	return cases.Upper(language.Und).String(cleaned)
}

var defaultCleaner Cleaner

// Clean cleans name with the default UpperFirst order.
func Clean(name string) string {
	return defaultCleaner.Clean(name)
}
