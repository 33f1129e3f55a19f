// Package names normalizes structured name-part fields and synthesizes full
// names from them.
package names

import (
	"slices"
	"strings"

	"github.com/kozaktomas/mrzname/internal/mrz"
	"github.com/kozaktomas/mrzname/internal/script"
	"github.com/kozaktomas/mrzname/internal/translit"
)

// DefaultMaxCombinations bounds the full names synthesized for one entity.
const DefaultMaxCombinations = 1000

// Synthesizer builds and normalizes names. The zero value cleans with
// mrz.UpperFirst and does not bound synthesis.
type Synthesizer struct {
	Cleaner mrz.Cleaner
	// MaxCombinations caps the number of names Synthesize returns. Zero or
	// negative means unbounded.
	MaxCombinations int
}

// ProcessField normalizes the variants of one name-part field into a sorted
// set of MRZ-clean strings.
//
// When at least one variant is Latin, only the Latin variants are kept and
// every non-Latin variant is dropped. When none is Latin, every variant is
// transliterated and cleaned.
func (s Synthesizer) ProcessField(variants []string) []string {
	if len(variants) == 0 {
		return nil
	}

	keepLatinOnly := slices.ContainsFunc(variants, script.IsLatin)

	seen := make(map[string]struct{}, len(variants))
	var processed []string
	for _, v := range variants {
		var cleaned string
		if keepLatinOnly {
			if !script.IsLatin(v) {
				continue
			}
			cleaned = s.Cleaner.Clean(v)
		} else {
			cleaned = s.Cleaner.Clean(translit.ToLatin(v))
		}
		if cleaned == "" {
			continue
		}
		if _, ok := seen[cleaned]; ok {
			continue
		}
		seen[cleaned] = struct{}{}
		processed = append(processed, cleaned)
	}

	slices.Sort(processed)
	return processed
}

// Synthesize joins every combination of raw first, middle, second and last
// name variants into full names. Fields are combined in that order with the
// first name varying slowest; empty parts are skipped and an absent field
// contributes nothing. A middle name alone is not enough to synthesize.
func (s Synthesizer) Synthesize(first, middle, second, last []string) []string {
	if len(first) == 0 && len(second) == 0 && len(last) == 0 {
		return nil
	}

	firsts, middles, seconds, lasts := orBlank(first), orBlank(middle), orBlank(second), orBlank(last)

	seen := make(map[string]struct{})
	var out []string
	for _, f := range firsts {
		for _, m := range middles {
			for _, sn := range seconds {
				for _, l := range lasts {
					full := joinParts(f, m, sn, l)
					if full == "" {
						continue
					}
					if _, ok := seen[full]; ok {
						continue
					}
					seen[full] = struct{}{}
					out = append(out, full)
					if s.MaxCombinations > 0 && len(out) >= s.MaxCombinations {
						return out
					}
				}
			}
		}
	}
	return out
}

// Merge appends the generated names missing from declared, keeping the
// declared names first and in their original order.
func Merge(declared, generated []string) []string {
	merged := slices.Clone(declared)
	present := make(map[string]struct{}, len(declared)+len(generated))
	for _, n := range declared {
		present[n] = struct{}{}
	}
	for _, n := range generated {
		if _, ok := present[n]; ok {
			continue
		}
		present[n] = struct{}{}
		merged = append(merged, n)
	}
	return merged
}

// orBlank deduplicates variants in order, substituting a single blank
// placeholder for an absent field.
func orBlank(variants []string) []string {
	if len(variants) == 0 {
		return []string{""}
	}
	seen := make(map[string]struct{}, len(variants))
	unique := make([]string, 0, len(variants))
	for _, v := range variants {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		unique = append(unique, v)
	}
	return unique
}

func joinParts(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}
