// Package modulegen emits JavaScript message modules and TypeScript
// declarations for a validated locale set.
//
// Two module flavors are written side by side, each into its own directory:
// ESM (export/import) and CommonJS (module.exports/require). Every output
// directory receives:
//
//	locale.d.ts   shared Locale interface inferred from the baseline document
//	<code>.js     messages for one language
//	<code>.d.ts   declaration for <code>.js
//	all.js        every language keyed by code
//	all.d.ts      declaration for all.js
//
// Codes normalized from dashed file names are exported under both spellings
// in the aggregate module (pt_br and "pt-br").
//
// Output directories are removed and recreated on every run:
//
//	gen := modulegen.New(modulegen.WithOutputDirs("js", "cjs"))
//	files, err := gen.Generate(ctx, set)
package modulegen
