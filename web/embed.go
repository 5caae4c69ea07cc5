// Package web embeds the client UI assets.
package web

import "embed"

// Static embeds the single-page client.
//
//go:embed static
var Static embed.FS
