package report

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/kozaktomas/mrzname/internal/extract"
)

func records() []extract.PersonRecord {
	birth := "1980"
	return []extract.PersonRecord{
		{ID: "a", Name: "IVAN PETROV", IsLatinName: true, HasPassport: true, Passports: []string{"P1"},
			BirthDate: &birth, LastName: []string{"PETROV"}, Countries: []string{"RU"},
			Status: []extract.Status{extract.StatusSanctioned, extract.StatusPEP}},
		{ID: "a", Name: "VANYA PETROV", IsLatinName: true, HasPassport: true, Passports: []string{"P1"},
			BirthDate: &birth, LastName: []string{"PETROV"}, Countries: []string{"RU"},
			Status: []extract.Status{extract.StatusSanctioned, extract.StatusPEP}},
		{ID: "b", Name: "李小龙", Aliases: []string{"Bruce"}, SecondName: []string{"X"},
			Status: []extract.Status{extract.StatusSanctioned}},
	}
}

func TestCompute(t *testing.T) {
	missing := []extract.MissingLatinName{{ID: "b", PrimaryName: "李小龙"}}
	s := Compute(records(), missing)

	if s.Total != 3 || s.UniqueEntities != 2 {
		t.Errorf("Total = %d, UniqueEntities = %d", s.Total, s.UniqueEntities)
	}
	if s.WithLatinName != 2 || s.WithPassport != 2 || s.WithAliases != 1 || s.WithBirthDate != 2 {
		t.Errorf("unexpected counts %+v", s)
	}
	if s.WithLastName != 2 || s.WithSecondName != 1 || s.WithCountries != 2 || s.EntitiesWithoutLatin != 1 {
		t.Errorf("unexpected counts %+v", s)
	}
	if len(s.StatusCounts) != 2 || s.StatusCounts[0].Status != extract.StatusSanctioned || s.StatusCounts[0].Count != 3 {
		t.Errorf("StatusCounts = %+v", s.StatusCounts)
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, records(), []extract.MissingLatinName{{ID: "b", PrimaryName: "李小龙"}})
	out := buf.String()

	for _, want := range []string{
		"Total entries: 3",
		"Entries with Latin names: 2 (66.7%)",
		"sanctioned: 3 (100.0%)",
		"1. ID: b",
		"Selected name: 李小龙",
		"SAMPLE PERSONS WITH PASSPORTS",
		"Passports: P1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestPrintThousandsSeparator(t *testing.T) {
	many := make([]extract.PersonRecord, 1234)
	for i := range many {
		many[i] = extract.PersonRecord{ID: fmt.Sprintf("id%d", i), Name: "X"}
	}

	var buf bytes.Buffer
	Print(&buf, many, nil)
	if !strings.Contains(buf.String(), "Total entries: 1,234") {
		t.Errorf("expected grouped digits, got:\n%s", buf.String())
	}
}

func TestPrintEmpty(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, nil, nil)
	if !strings.Contains(buf.String(), "Total entries: 0") {
		t.Error("expected zero totals")
	}
	if strings.Contains(buf.String(), "SAMPLE PERSONS") {
		t.Error("no samples expected")
	}
}
