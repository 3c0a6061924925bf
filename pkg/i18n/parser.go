package i18n

import "context"

// Parser decodes a translation file into language -> key tree.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)
	SupportsFileExtension(ext string) bool
}
