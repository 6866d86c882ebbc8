package queries

import (
	"embed"
)

// Library embeds all saved-query YAML definitions from the library
// subdirectory
//
//go:embed all:library
var Library embed.FS
