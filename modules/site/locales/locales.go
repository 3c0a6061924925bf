// Package locales embeds the site dictionaries, one YAML file per
// language keyed by the language code.
package locales

import "embed"

//go:embed *.yaml
var FS embed.FS
