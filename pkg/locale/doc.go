// Package locale loads per-language JSON message files and validates that
// every language defines the same set of non-empty messages.
//
// # File Layout
//
// Each language lives in its own top-level file named after the language.
// The file holds an object with exactly one member, named like the file,
// whose value is the locale document:
//
//	en.json     {"en":    {"title": "Hello", ...}}
//	pt-br.json  {"pt-br": {"title": "Olá", ...}}
//
// The language code is the file name without extension, with dashes
// replaced by underscores (pt-br.json → pt_br). Package manifests and
// compiler configs (see ReservedFiles) are ignored.
//
// # Loading and Validation
//
//	set, err := locale.Load(os.DirFS("."))
//	if err != nil {
//		// *SchemaError: malformed file, abort
//	}
//	if issues := locale.Check(set); len(issues) > 0 {
//		for _, issue := range issues {
//			fmt.Fprintln(os.Stderr, issue)
//		}
//	}
//
// Check never stops at the first problem: it reports every (language, key)
// pair whose message is missing, null or empty.
package locale
