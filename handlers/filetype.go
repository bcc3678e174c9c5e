package handlers

import "regexp"

var fileTypePattern = regexp.MustCompile(`\.([^.]+)$`)

// FileType derives a file's display type from its name: the suffix after the
// last dot, or "file" when the name has no extension.
func FileType(name string) string {
	if m := fileTypePattern.FindStringSubmatch(name); m != nil {
		return m[1]
	}
	return "file"
}
