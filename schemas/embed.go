// Package schemas embeds the JSON Schema documents describing persisted blobs.
package schemas

import "embed"

// Schema file names.
const (
	ProfileSchema   = "profile.schema.json"
	TemplatesSchema = "templates.schema.json"
)

// FS holds every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS
