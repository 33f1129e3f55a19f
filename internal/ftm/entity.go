// Package ftm models Follow-the-Money entities as published by OpenSanctions
// and reads them from JSON or newline-delimited JSON files.
package ftm

import (
	"encoding/json"
	"fmt"
)

// SchemaPerson is the only schema person records are extracted from.
const SchemaPerson = "Person"

// Property names read by the extractor.
const (
	PropName           = "name"
	PropFirstName      = "firstName"
	PropMiddleName     = "middleName"
	PropSecondName     = "secondName"
	PropLastName       = "lastName"
	PropAlias          = "alias"
	PropWeakAlias      = "weakAlias"
	PropBirthDate      = "birthDate"
	PropBirthPlace     = "birthPlace"
	PropPassportNumber = "passportNumber"
	PropNationality    = "nationality"
	PropCountry        = "country"
	PropAddress        = "address"
	PropTopics         = "topics"
)

// Entity is one FTM entity.
type Entity struct {
	ID         string     `json:"id"`
	Schema     string     `json:"schema"`
	Properties Properties `json:"properties"`
	Datasets   []string   `json:"datasets"`
}

// Prop returns the values of a property. Absent properties are empty.
func (e *Entity) Prop(name string) []string {
	return e.Properties[name]
}

// Properties maps a property name to its ordered values.
type Properties map[string][]string

// UnmarshalJSON accepts a single string where a list is expected and drops
// values that are not strings.
func (p *Properties) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding properties: %w", err)
	}

	props := make(Properties, len(raw))
	for key, msg := range raw {
		var values []json.RawMessage
		if err := json.Unmarshal(msg, &values); err != nil {
			var single string
			if json.Unmarshal(msg, &single) == nil {
				props[key] = []string{single}
			}
			continue
		}
		strs := make([]string, 0, len(values))
		for _, v := range values {
			var s string
			if json.Unmarshal(v, &s) == nil {
				strs = append(strs, s)
			}
		}
		props[key] = strs
	}
	*p = props
	return nil
}
