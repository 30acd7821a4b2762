package web

import "embed"

// Static holds the chat page and its script under static/.
//
//go:embed static
var Static embed.FS
