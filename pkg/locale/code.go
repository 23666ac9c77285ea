package locale

import (
	"path"
	"strings"
)

// DefaultBaseline is the language whose document defines the canonical schema.
const DefaultBaseline = "en"

// ReservedFiles are JSON files that may sit next to locale files but are not locales.
var ReservedFiles = map[string]struct{}{
	"package.json":      {},
	"package-lock.json": {},
	"tsconfig.json":     {},
}

// IsReservedFile reports whether name is a reserved, non-locale file name.
func IsReservedFile(name string) bool {
	_, ok := ReservedFiles[path.Base(name)]
	return ok
}

// BaseName returns the file name without directory and .json extension.
func BaseName(fileName string) string {
	return strings.TrimSuffix(path.Base(fileName), ".json")
}

// LanguageCode derives the normalized language code from a file name:
// pt-br.json → pt_br.
func LanguageCode(fileName string) string {
	return strings.ReplaceAll(BaseName(fileName), "-", "_")
}

// DashCase turns a normalized language code back into its dashed form:
// pt_br → pt-br.
func DashCase(code string) string {
	return strings.ReplaceAll(code, "_", "-")
}
