// Package script labels text fragments by the writing system they are
// written in.
package script

import "unicode"

// Script is a writing system classification.
type Script int

const (
	Other Script = iota
	Latin
	Cyrillic
	Arabic
)

func (s Script) String() string {
	switch s {
	case Latin:
		return "latin"
	case Cyrillic:
		return "cyrillic"
	case Arabic:
		return "arabic"
	default:
		return "other"
	}
}

// MarshalText renders the script name in JSON and YAML output.
func (s Script) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Classify returns the script of text. Latin wins when the majority of letters
// are Latin, otherwise any Cyrillic letter marks the text Cyrillic and any
// Arabic letter marks it Arabic.
func Classify(text string) Script {
	switch {
	case IsLatin(text):
		return Latin
	case IsCyrillic(text):
		return Cyrillic
	case IsArabic(text):
		return Arabic
	default:
		return Other
	}
}

// IsLatin reports whether strictly more than half of the letters in text are
// Latin. Text without letters is not Latin.
func IsLatin(text string) bool {
	var latin, letters int
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if isLatinLetter(r) {
			latin++
		}
	}
	if letters == 0 {
		return false
	}
	return latin*2 > letters
}

// IsCyrillic reports whether text contains at least one letter from the
// Cyrillic block (U+0400–U+04FF).
func IsCyrillic(text string) bool {
	return anyLetterIn(text, 0x0400, 0x04FF)
}

// IsArabic reports whether text contains at least one letter from the Arabic
// block (U+0600–U+06FF).
func IsArabic(text string) bool {
	return anyLetterIn(text, 0x0600, 0x06FF)
}

func isLatinLetter(r rune) bool {
	if ('A' <= r && r <= 'Z') || ('a' <= r && r <= 'z') {
		return true
	}
	return unicode.Is(unicode.Latin, r)
}

func anyLetterIn(text string, lo, hi rune) bool {
	for _, r := range text {
		if lo <= r && r <= hi && unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
