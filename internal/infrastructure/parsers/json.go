package parsers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// JSONParser parses entries from a JSON array. Elements may be objects with
// "id" and/or "name" (as written by favorites export), bare numbers, or bare
// strings.
type JSONParser struct{}

// Parse reads JSON from the reader and returns parsed entries.
func (p *JSONParser) Parse(r io.Reader) ([]RawEntry, error) {
	var items []json.RawMessage

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&items); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	entries := make([]RawEntry, 0, len(items))
	for i, item := range items {
		// Line numbers are array index + 1
		entry, err := parseJSONItem(item, i+1)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func parseJSONItem(item json.RawMessage, lineNum int) (RawEntry, error) {
	trimmed := bytes.TrimSpace(item)
	if len(trimmed) == 0 {
		return RawEntry{}, fmt.Errorf("item %d: empty value", lineNum)
	}

	switch trimmed[0] {
	case '{':
		var entry RawEntry
		if err := json.Unmarshal(trimmed, &entry); err != nil {
			return RawEntry{}, fmt.Errorf("item %d: %w", lineNum, err)
		}
		entry.LineNum = lineNum
		return entry, nil
	case '"':
		var key string
		if err := json.Unmarshal(trimmed, &key); err != nil {
			return RawEntry{}, fmt.Errorf("item %d: %w", lineNum, err)
		}
		return entryFromKey(key, lineNum), nil
	default:
		var id int
		if err := json.Unmarshal(trimmed, &id); err != nil {
			return RawEntry{}, fmt.Errorf("item %d: expected object, string or integer id: %w", lineNum, err)
		}
		return RawEntry{ID: id, LineNum: lineNum}, nil
	}
}
