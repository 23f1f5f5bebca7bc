// Package parsers provides parsers for importing favorites from files.
package parsers

import (
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

// RawEntry identifies a creature read from an import file, before it is
// resolved against the creature source.
type RawEntry struct {
	ID      int    `json:"id,omitempty"`
	Name    string `json:"name,omitempty"`
	LineNum int    `json:"-"` // Line number (CSV) or array position (JSON), 1-indexed
}

// Key returns the lookup key for the entry: the name when present, else the id.
func (e RawEntry) Key() string {
	if name := strings.TrimSpace(e.Name); name != "" {
		return strings.ToLower(name)
	}
	if e.ID > 0 {
		return strconv.Itoa(e.ID)
	}
	return ""
}

// Parser defines the interface for parsing entries from various formats.
type Parser interface {
	Parse(r io.Reader) ([]RawEntry, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "csv".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "csv":
		return &CSVParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return &JSONParser{}
	case ".csv":
		return &CSVParser{}
	default:
		return nil
	}
}

// entryFromKey builds an entry from a bare id-or-name value.
func entryFromKey(key string, lineNum int) RawEntry {
	key = strings.TrimSpace(key)
	if id, err := strconv.Atoi(key); err == nil {
		return RawEntry{ID: id, LineNum: lineNum}
	}
	return RawEntry{Name: key, LineNum: lineNum}
}
