// Package export writes person records as CSV or JSON files.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kozaktomas/mrzname/internal/extract"
)

// Output formats accepted by the parse command.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatBoth = "both"
)

// listSeparator joins multi-valued fields in CSV cells.
const listSeparator = "; "

// Columns is the CSV header, in output order.
var Columns = []string{
	"id", "name", "is_latin_name", "first_name", "middle_name", "second_name", "last_name",
	"aliases", "birth_date", "passports", "nationality", "has_passport",
	"status", "countries", "datasets",
}

// ValidFormat reports whether format is csv, json or both.
func ValidFormat(format string) bool {
	switch format {
	case FormatCSV, FormatJSON, FormatBoth:
		return true
	}
	return false
}

// Paths derives output file names from a directory and a file prefix.
type Paths struct {
	Dir    string
	Prefix string
}

// CSV returns the path of the CSV file.
func (p Paths) CSV() string {
	return filepath.Join(p.Dir, p.Prefix+".csv")
}

// JSON returns the path of the JSON file.
func (p Paths) JSON() string {
	return filepath.Join(p.Dir, p.Prefix+".json")
}

// MissingLatinReport returns the path of the report listing entities without
// a Latin name.
func (p Paths) MissingLatinReport() string {
	return filepath.Join(p.Dir, p.Prefix+"_non_latin_names.json")
}

// WriteCSV writes records with a header row. Multi-valued fields are joined
// with "; ".
func WriteCSV(w io.Writer, records []extract.PersonRecord) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for i := range records {
		if err := cw.Write(csvRow(&records[i])); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", records[i].ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}

func csvRow(r *extract.PersonRecord) []string {
	birthDate := ""
	if r.BirthDate != nil {
		birthDate = *r.BirthDate
	}
	statuses := make([]string, len(r.Status))
	for i, s := range r.Status {
		statuses[i] = string(s)
	}

	return []string{
		r.ID,
		r.Name,
		formatBool(r.IsLatinName),
		strings.Join(r.FirstName, listSeparator),
		strings.Join(r.MiddleName, listSeparator),
		strings.Join(r.SecondName, listSeparator),
		strings.Join(r.LastName, listSeparator),
		strings.Join(r.Aliases, listSeparator),
		birthDate,
		strings.Join(r.Passports, listSeparator),
		strings.Join(r.Nationality, listSeparator),
		formatBool(r.HasPassport),
		strings.Join(statuses, listSeparator),
		strings.Join(r.Countries, listSeparator),
		strings.Join(r.Datasets, listSeparator),
	}
}

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// WriteJSON writes v as indented JSON without escaping non-ASCII or HTML
// characters.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// SaveCSV writes records to a CSV file at path.
func SaveCSV(path string, records []extract.PersonRecord) error {
	return saveFile(path, func(w io.Writer) error { return WriteCSV(w, records) })
}

// SaveJSON writes v to a JSON file at path.
func SaveJSON(path string, v any) error {
	return saveFile(path, func(w io.Writer) error { return WriteJSON(w, v) })
}

func saveFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	return write(f)
}
