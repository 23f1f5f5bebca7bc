package main

import "time"

// Interactive browse settings.
const (
	DefaultBrowseWindow = 300 * time.Millisecond
	browsePrompt        = "> "
)

// Valid export formats.
var validFormats = []string{"json", "csv", "markdown"}
