package names

import (
	"slices"
	"testing"
)

func TestProcessField(t *testing.T) {
	var s Synthesizer

	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"empty", nil, nil},
		{"latin only", []string{"Ivan", "José"}, []string{"IVAN", "JOSE"}},
		{"latin drops non-latin", []string{"Иван", "Ivan"}, []string{"IVAN"}},
		{"all cyrillic transliterated", []string{"Иван", "Ваня"}, []string{"IVAN", "VANIA"}},
		{"arabic transliterated", []string{"فاطمة"}, []string{"FAXTTMXAH"}},
		{"other script passes through", []string{"李"}, []string{"李"}},
		{"duplicates collapse", []string{"ivan", "Ivan", "IVAN"}, []string{"IVAN"}},
		{"blank variant skipped", []string{"", "Петров"}, []string{"PETROV"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := s.ProcessField(tt.input)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("ProcessField(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSynthesize(t *testing.T) {
	var s Synthesizer

	tests := []struct {
		name                        string
		first, middle, second, last []string
		expected                    []string
	}{
		{
			name:     "no parts",
			expected: nil,
		},
		{
			name:     "middle alone",
			middle:   []string{"Maria"},
			expected: nil,
		},
		{
			name:     "first and last",
			first:    []string{"Ivan"},
			last:     []string{"Petrov"},
			expected: []string{"Ivan Petrov"},
		},
		{
			name:     "product order first varies slowest",
			first:    []string{"Ivan", "Vanya"},
			middle:   []string{"S."},
			last:     []string{"Petrov", "Petroff"},
			expected: []string{"Ivan S. Petrov", "Ivan S. Petroff", "Vanya S. Petrov", "Vanya S. Petroff"},
		},
		{
			name:     "second name kept in order",
			first:    []string{"Juan"},
			second:   []string{"Garcia"},
			last:     []string{"Lopez"},
			expected: []string{"Juan Garcia Lopez"},
		},
		{
			name:     "empty variants skipped",
			first:    []string{""},
			last:     []string{"Petrov"},
			expected: []string{"Petrov"},
		},
		{
			name:     "all empty discarded",
			first:    []string{""},
			expected: nil,
		},
		{
			name:     "duplicate variants once",
			first:    []string{"Ivan", "Ivan"},
			last:     []string{"Petrov"},
			expected: []string{"Ivan Petrov"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := s.Synthesize(tt.first, tt.middle, tt.second, tt.last)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("Synthesize() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestSynthesizeMaxCombinations(t *testing.T) {
	s := Synthesizer{MaxCombinations: 3}
	first := []string{"A", "B", "C"}
	last := []string{"X", "Y", "Z"}

	result := s.Synthesize(first, nil, nil, last)
	expected := []string{"A X", "A Y", "A Z"}
	if !slices.Equal(result, expected) {
		t.Errorf("Synthesize() = %q, want %q", result, expected)
	}

	unbounded := Synthesizer{}
	if got := len(unbounded.Synthesize(first, nil, nil, last)); got != 9 {
		t.Errorf("expected 9 unbounded combinations, got %d", got)
	}
}

func TestMerge(t *testing.T) {
	declared := []string{"Ivan Petrov", "Иван Петров"}
	generated := []string{"Ivan Petrov", "Ivan S. Petrov", "Ivan S. Petrov"}

	result := Merge(declared, generated)
	expected := []string{"Ivan Petrov", "Иван Петров", "Ivan S. Petrov"}
	if !slices.Equal(result, expected) {
		t.Errorf("Merge() = %q, want %q", result, expected)
	}

	if len(declared) != 2 {
		t.Errorf("Merge modified declared names: %q", declared)
	}
}
