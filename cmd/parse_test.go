package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kozaktomas/mrzname/internal/extract"
)

const testEntities = `{"id": "p1", "schema": "Person", "properties": {"name": ["Ivan Petrov"], "passportNumber": ["P1"]}}
{"id": "p2", "schema": "Person", "properties": {"firstName": ["Иван"], "lastName": ["Сидоров"]}}
{"id": "c1", "schema": "Company", "properties": {"name": ["Acme"]}}
`

func TestParseCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "entities.ftm.json")
	if err := os.WriteFile(input, []byte(testEntities), 0o600); err != nil {
		t.Fatalf("writing input: %v", err)
	}
	outDir := filepath.Join(dir, "out")

	rootCmd.SetArgs([]string{"parse", input, "--output-dir", outDir, "--output-prefix", "people", "--quiet", "--workers", "2"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	csvData, err := os.ReadFile(filepath.Join(outDir, "people.csv"))
	if err != nil {
		t.Fatalf("reading CSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(csvData)), "\n")
	if len(lines) != 3 {
		t.Errorf("expected header and 2 rows, got %d lines", len(lines))
	}

	jsonData, err := os.ReadFile(filepath.Join(outDir, "people.json"))
	if err != nil {
		t.Fatalf("reading JSON: %v", err)
	}
	var records []extract.PersonRecord
	if err := json.Unmarshal(jsonData, &records); err != nil {
		t.Fatalf("parsing JSON: %v", err)
	}
	if len(records) != 2 || records[1].Name != "IVAN SIDOROV" {
		t.Errorf("unexpected records %+v", records)
	}

	if _, err := os.Stat(filepath.Join(outDir, "people_non_latin_names.json")); err != nil {
		t.Errorf("expected non-Latin names report: %v", err)
	}
}

func TestParseCommand_Errors(t *testing.T) {
	dir := t.TempDir()

	rootCmd.SetArgs([]string{"parse", filepath.Join(dir, "missing.json"), "--output-dir", dir, "--quiet"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("expected error for missing input file")
	}

	rootCmd.SetArgs([]string{"parse", filepath.Join(dir, "missing.json"), "--output-format", "xml"})
	if err := rootCmd.Execute(); err == nil || !strings.Contains(err.Error(), "invalid output format") {
		t.Errorf("expected invalid output format error, got %v", err)
	}
	// Reset flags changed above for later tests.
	parseCmd.Flags().Set("output-format", "both")
}
