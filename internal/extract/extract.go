// Package extract turns FTM person entities into MRZ-ready person records,
// one per usable Latin name spelling.
package extract

import (
	"slices"
	"strings"

	"github.com/kozaktomas/mrzname/internal/ftm"
	"github.com/kozaktomas/mrzname/internal/names"
	"github.com/kozaktomas/mrzname/internal/script"
	"github.com/kozaktomas/mrzname/internal/translit"
)

// Extractor extracts person records. It holds no mutable state and is safe
// for concurrent use.
type Extractor struct {
	synth names.Synthesizer
}

// New creates an Extractor using synth for name cleaning and synthesis.
func New(synth names.Synthesizer) *Extractor {
	return &Extractor{synth: synth}
}

// Extract returns the person records of e. Entities of any schema other than
// Person, and persons without any name, yield no records.
func (x *Extractor) Extract(e ftm.Entity) Result {
	if e.Schema != ftm.SchemaPerson {
		return Result{}
	}

	first := e.Prop(ftm.PropFirstName)
	middle := e.Prop(ftm.PropMiddleName)
	second := e.Prop(ftm.PropSecondName)
	last := e.Prop(ftm.PropLastName)

	collected := names.Merge(e.Prop(ftm.PropName), x.synth.Synthesize(first, middle, second, last))
	if len(collected) == 0 {
		return Result{}
	}

	var result Result
	latin := newNameSet()
	var nonLatin []string
	for _, n := range collected {
		if script.IsLatin(n) {
			latin.add(x.synth.Cleaner.Clean(n))
		} else {
			nonLatin = append(nonLatin, n)
		}
	}

	if latin.empty() && len(nonLatin) > 0 {
		result.MissingLatin = &MissingLatinName{
			ID:          e.ID,
			PrimaryName: collected[0],
			AllNames:    slices.Clone(collected),
		}
		for _, n := range nonLatin {
			latin.add(x.synth.Cleaner.Clean(translit.ToLatin(n)))
		}
	}

	if latin.empty() {
		latin.add(x.synth.Cleaner.Clean(collected[0]))
	}
	if latin.empty() {
		return result
	}

	shared := x.sharedAttributes(&e, collected)
	result.Records = make([]PersonRecord, 0, len(latin.order))
	for _, name := range latin.order {
		rec := shared
		rec.Name = name
		rec.IsLatinName = script.IsLatin(name)
		result.Records = append(result.Records, rec)
	}
	return result
}

// sharedAttributes builds the fields common to every record of an entity.
func (x *Extractor) sharedAttributes(e *ftm.Entity, collected []string) PersonRecord {
	passports := orEmpty(slices.Clone(e.Prop(ftm.PropPassportNumber)))

	var birthDate *string
	if dates := e.Prop(ftm.PropBirthDate); len(dates) > 0 {
		d := dates[0]
		birthDate = &d
	}

	return PersonRecord{
		ID:          e.ID,
		FirstName:   orEmpty(x.synth.ProcessField(e.Prop(ftm.PropFirstName))),
		MiddleName:  orEmpty(x.synth.ProcessField(e.Prop(ftm.PropMiddleName))),
		SecondName:  orEmpty(x.synth.ProcessField(e.Prop(ftm.PropSecondName))),
		LastName:    orEmpty(x.synth.ProcessField(e.Prop(ftm.PropLastName))),
		Aliases:     collectAliases(e, collected),
		BirthDate:   birthDate,
		Passports:   passports,
		Nationality: upperUnique(e.Prop(ftm.PropNationality)),
		HasPassport: len(passports) > 0,
		Status:      deriveStatus(e.Prop(ftm.PropTopics), e.Datasets),
		Countries:   collectCountries(e),
		Datasets:    orEmpty(slices.Clone(e.Datasets)),
	}
}

// collectAliases returns the union of alias and weakAlias without the names
// the entity is already known by.
func collectAliases(e *ftm.Entity, collected []string) []string {
	known := make(map[string]struct{}, len(collected))
	for _, n := range collected {
		known[n] = struct{}{}
	}

	set := make(map[string]struct{})
	for _, prop := range []string{ftm.PropAlias, ftm.PropWeakAlias} {
		for _, a := range e.Prop(prop) {
			if _, ok := known[a]; !ok {
				set[a] = struct{}{}
			}
		}
	}

	aliases := make([]string, 0, len(set))
	for a := range set {
		aliases = append(aliases, a)
	}
	slices.Sort(aliases)
	return aliases
}

func upperUnique(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		u := strings.ToUpper(v)
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// nameSet keeps non-empty names in insertion order without duplicates.
type nameSet struct {
	order []string
	seen  map[string]struct{}
}

func newNameSet() *nameSet {
	return &nameSet{seen: make(map[string]struct{})}
}

func (s *nameSet) add(name string) {
	if name == "" {
		return
	}
	if _, ok := s.seen[name]; ok {
		return
	}
	s.seen[name] = struct{}{}
	s.order = append(s.order, name)
}

func (s *nameSet) empty() bool {
	return len(s.order) == 0
}
