package mrz

import (
	"github.com/kozaktomas/mrzname/internal/script"
	"github.com/kozaktomas/mrzname/internal/translit"
)

// Inspection shows each stage a name passes through on its way to MRZ form.
type Inspection struct {
	Input  string        `json:"input"`
	Script script.Script `json:"script"`
	Latin  string        `json:"latin"`
	MRZ    string        `json:"mrz"`
}

// Inspect classifies name and cleans it the way extraction does: names that
// are mostly Latin are cleaned as they are, others are transliterated first.
func (c Cleaner) Inspect(name string) Inspection {
	latin := name
	if !script.IsLatin(name) {
		latin = translit.ToLatin(name)
	}
	return Inspection{
		Input:  name,
		Script: script.Classify(name),
		Latin:  latin,
		MRZ:    c.Clean(latin),
	}
}
