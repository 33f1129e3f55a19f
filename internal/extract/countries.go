package extract

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kozaktomas/mrzname/internal/ftm"
)

// collectCountries gathers upper-cased country tokens from the country and
// nationality properties, from birth places that are bare country codes, and
// from country codes ending an address.
func collectCountries(e *ftm.Entity) []string {
	set := make(map[string]struct{})
	add := func(c string) {
		if c != "" {
			set[strings.ToUpper(c)] = struct{}{}
		}
	}

	for _, c := range e.Prop(ftm.PropCountry) {
		add(c)
	}
	for _, n := range e.Prop(ftm.PropNationality) {
		add(n)
	}
	for _, place := range e.Prop(ftm.PropBirthPlace) {
		if isCountryCode(place) {
			add(place)
		}
	}
	for _, addr := range e.Prop(ftm.PropAddress) {
		parts := strings.Split(addr, ",")
		if last := strings.TrimSpace(parts[len(parts)-1]); isCountryCode(last) {
			add(last)
		}
	}

	countries := make([]string, 0, len(set))
	for c := range set {
		countries = append(countries, c)
	}
	slices.Sort(countries)
	return countries
}

// isCountryCode reports whether s is two or three letters.
func isCountryCode(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < 2 || n > 3 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
