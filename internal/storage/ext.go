package storage

import "strings"

var allowedExt = map[string]bool{
	"json": true,
	"txt":  true,
	"pdf":  true,
}

// ExtOK reports whether the filename carries an allowed extension.
// Filenames without a dot are rejected.
func ExtOK(filename string) bool {
	return allowedExt[Ext(filename)]
}

// Ext returns the lowercased extension after the last dot, or "" if the
// filename has none.
func Ext(filename string) string {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(filename[i+1:])
}
