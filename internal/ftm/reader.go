package ftm

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// maxLineSize bounds a single NDJSON line. OpenSanctions entities with many
// addresses easily exceed bufio's 64KiB default.
const maxLineSize = 16 * 1024 * 1024

// ReadFile reads entities from a JSON or NDJSON file.
func ReadFile(path string) ([]Entity, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(content)
}

// Read reads entities from r, see Parse.
func Read(r io.Reader) ([]Entity, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading entities: %w", err)
	}
	return Parse(content)
}

// Parse decodes entities from content. A JSON array yields its elements, an
// object yields its "entities" array or itself, and any other JSON value
// yields nothing. Content that is not a single JSON document is read as
// newline-delimited JSON, skipping lines that do not decode.
func Parse(content []byte) ([]Entity, error) {
	content = bytes.TrimSpace(content)
	if len(content) == 0 {
		return nil, nil
	}

	if json.Valid(content) {
		return parseDocument(content), nil
	}
	return parseLines(content)
}

func parseDocument(content []byte) []Entity {
	switch content[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(content, &items); err != nil {
			return nil
		}
		return decodeEach(items)
	case '{':
		var wrapper struct {
			Entities []json.RawMessage `json:"entities"`
		}
		if err := json.Unmarshal(content, &wrapper); err == nil && wrapper.Entities != nil {
			return decodeEach(wrapper.Entities)
		}
		if e, ok := decodeEntity(content); ok {
			return []Entity{e}
		}
	}
	return nil
}

func parseLines(content []byte) ([]Entity, error) {
	var entities []Entity
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if e, ok := decodeEntity(line); ok {
			entities = append(entities, e)
		}
	}
	if err := scanner.Err(); err != nil {
		return entities, fmt.Errorf("scanning entity lines: %w", err)
	}
	return entities, nil
}

func decodeEach(items []json.RawMessage) []Entity {
	entities := make([]Entity, 0, len(items))
	for _, item := range items {
		if e, ok := decodeEntity(item); ok {
			entities = append(entities, e)
		}
	}
	return entities
}

// decodeEntity decodes a JSON object into an Entity. Non-objects and objects
// with mistyped fields are rejected.
func decodeEntity(data []byte) (Entity, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return Entity{}, false
	}
	var e Entity
	if err := json.Unmarshal(data, &e); err != nil {
		return Entity{}, false
	}
	return e, true
}
