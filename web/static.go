package web

import "embed"

// Static holds the stylesheet and client script served under /static
//
//go:embed static
var Static embed.FS
