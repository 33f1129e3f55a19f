// Package report summarizes extracted person records for the terminal.
package report

import (
	"cmp"
	"io"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kozaktomas/mrzname/internal/extract"
)

const (
	maxMissingLatinShown = 10
	maxSamplesShown      = 5
	maxListItemsShown    = 3
)

// StatusCount is the number of records carrying a status.
type StatusCount struct {
	Status extract.Status
	Count  int
}

// Stats are aggregate counts over a run's records.
type Stats struct {
	Total                int
	UniqueEntities       int
	WithLatinName        int
	EntitiesWithoutLatin int
	WithPassport         int
	WithAliases          int
	WithBirthDate        int
	WithCountries        int
	WithLastName         int
	WithSecondName       int
	// StatusCounts is ordered by count, most frequent first.
	StatusCounts []StatusCount
}

// Compute aggregates records and the entities reported without a Latin name.
func Compute(records []extract.PersonRecord, missing []extract.MissingLatinName) Stats {
	s := Stats{Total: len(records), EntitiesWithoutLatin: len(missing)}
	ids := make(map[string]struct{})
	statusIndex := make(map[extract.Status]int)

	for i := range records {
		r := &records[i]
		ids[r.ID] = struct{}{}
		s.WithLatinName += boolInt(r.IsLatinName)
		s.WithPassport += boolInt(r.HasPassport)
		s.WithAliases += boolInt(len(r.Aliases) > 0)
		s.WithBirthDate += boolInt(r.BirthDate != nil && *r.BirthDate != "")
		s.WithCountries += boolInt(len(r.Countries) > 0)
		s.WithLastName += boolInt(len(r.LastName) > 0)
		s.WithSecondName += boolInt(len(r.SecondName) > 0)

		for _, st := range r.Status {
			idx, ok := statusIndex[st]
			if !ok {
				idx = len(s.StatusCounts)
				statusIndex[st] = idx
				s.StatusCounts = append(s.StatusCounts, StatusCount{Status: st})
			}
			s.StatusCounts[idx].Count++
		}
	}
	s.UniqueEntities = len(ids)

	slices.SortStableFunc(s.StatusCounts, func(a, b StatusCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return s
}

// Print writes the statistics, the first entities without a Latin name and
// a few sample persons with passports.
func Print(w io.Writer, records []extract.PersonRecord, missing []extract.MissingLatinName) {
	p := message.NewPrinter(language.English)
	s := Compute(records, missing)
	pct := func(n int) float64 {
		if s.Total == 0 {
			return 0
		}
		return float64(n) / float64(s.Total) * 100
	}
	rule := strings.Repeat("=", 50)

	p.Fprintf(w, "\n%s\nSTATISTICS\n%s\n", rule, rule)
	p.Fprintf(w, "Total entries: %d\n", s.Total)
	p.Fprintf(w, "Unique entities: %d\n", s.UniqueEntities)
	p.Fprintf(w, "Entries with Latin names: %d (%.1f%%)\n", s.WithLatinName, pct(s.WithLatinName))
	p.Fprintf(w, "Entries WITHOUT Latin names: %d (%.1f%%)\n", s.Total-s.WithLatinName, pct(s.Total-s.WithLatinName))
	p.Fprintf(w, "Entities without any Latin names: %d\n", s.EntitiesWithoutLatin)
	p.Fprintf(w, "Persons with passports: %d (%.1f%%)\n", s.WithPassport, pct(s.WithPassport))
	p.Fprintf(w, "Persons with aliases: %d (%.1f%%)\n", s.WithAliases, pct(s.WithAliases))
	p.Fprintf(w, "Persons with birth date: %d (%.1f%%)\n", s.WithBirthDate, pct(s.WithBirthDate))
	p.Fprintf(w, "Persons with countries: %d (%.1f%%)\n", s.WithCountries, pct(s.WithCountries))
	p.Fprintf(w, "Persons with last name: %d (%.1f%%)\n", s.WithLastName, pct(s.WithLastName))
	p.Fprintf(w, "Persons without last name: %d (%.1f%%)\n", s.Total-s.WithLastName, pct(s.Total-s.WithLastName))
	p.Fprintf(w, "Persons with second name: %d (%.1f%%)\n", s.WithSecondName, pct(s.WithSecondName))
	p.Fprintf(w, "Persons without second name: %d (%.1f%%)\n", s.Total-s.WithSecondName, pct(s.Total-s.WithSecondName))

	if len(s.StatusCounts) > 0 {
		p.Fprintf(w, "\nStatus breakdown:\n")
		for _, sc := range s.StatusCounts {
			p.Fprintf(w, "  %s: %d (%.1f%%)\n", sc.Status, sc.Count, pct(sc.Count))
		}
	}

	if len(missing) > 0 {
		p.Fprintf(w, "\n%s\nENTITIES WITHOUT LATIN NAMES (first %d of %d)\n%s\n",
			rule, min(maxMissingLatinShown, len(missing)), len(missing), rule)
		for i, m := range missing[:min(maxMissingLatinShown, len(missing))] {
			p.Fprintf(w, "\n%d. ID: %s\n", i+1, m.ID)
			p.Fprintf(w, "   Selected name: %s\n", m.PrimaryName)
		}
	}

	printSamples(p, w, records, rule)
}

func printSamples(p *message.Printer, w io.Writer, records []extract.PersonRecord, rule string) {
	var samples []*extract.PersonRecord
	for i := range records {
		if records[i].HasPassport {
			samples = append(samples, &records[i])
			if len(samples) == maxSamplesShown {
				break
			}
		}
	}
	if len(samples) == 0 {
		return
	}

	p.Fprintf(w, "\n%s\nSAMPLE PERSONS WITH PASSPORTS (first %d)\n%s\n", rule, maxSamplesShown, rule)
	for i, r := range samples {
		p.Fprintf(w, "\n%d. %s\n", i+1, r.Name)
		if len(r.Aliases) > 0 {
			p.Fprintf(w, "   Aliases: %s\n", strings.Join(firstN(r.Aliases, maxListItemsShown), ", "))
		}
		if r.BirthDate != nil && *r.BirthDate != "" {
			p.Fprintf(w, "   Birth Date: %s\n", *r.BirthDate)
		}
		p.Fprintf(w, "   Passports: %s\n", strings.Join(r.Passports, ", "))
		if len(r.Status) > 0 {
			statuses := make([]string, len(r.Status))
			for j, st := range r.Status {
				statuses[j] = string(st)
			}
			p.Fprintf(w, "   Status: %s\n", strings.Join(statuses, ", "))
		}
		if len(r.Countries) > 0 {
			p.Fprintf(w, "   Countries: %s\n", strings.Join(r.Countries, ", "))
		}
		if len(r.Datasets) > 0 {
			p.Fprintf(w, "   Datasets: %s\n", strings.Join(firstN(r.Datasets, maxListItemsShown), ", "))
		}
	}
}

func firstN(values []string, n int) []string {
	return values[:min(n, len(values))]
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
