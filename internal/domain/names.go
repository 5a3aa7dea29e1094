package domain

import (
	"path"
	"strings"
)

// StripDecorations removes every occurrence of each decoration from name,
// applying the decorations in order.
func StripDecorations(name string, decorations []string) string {
	for _, d := range decorations {
		if d == "" {
			continue
		}
		name = strings.ReplaceAll(name, d, "")
	}
	return strings.TrimSpace(name)
}

// FileStem returns the base name of p without its extension.
func FileStem(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}
