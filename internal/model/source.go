package model

import "strings"

// Path represents a source file path as emitted by the instrumentation tool.
type Path string

// TrimPrefix returns the path with prefix removed when it starts with it.
func (p Path) TrimPrefix(prefix string) Path {
	if prefix == "" {
		return p
	}

	return Path(strings.TrimPrefix(string(p), prefix))
}
