package modulegen

import (
	"strings"

	"github.com/dmitrymomot/localekit/pkg/jsonvalue"
	"github.com/dmitrymomot/localekit/pkg/locale"
	"github.com/dmitrymomot/localekit/pkg/tstype"
)

// Flavor is a JavaScript module-loading convention.
type Flavor int

const (
	ESM Flavor = iota
	CommonJS
)

func (f Flavor) String() string {
	if f == CommonJS {
		return "commonjs"
	}
	return "esm"
}

// RenderLocaleType renders locale.d.ts: the Locale interface shared by all languages.
func RenderLocaleType(baseline *jsonvalue.Object) string {
	return lines(
		"/**",
		" * Type to which all locales adhere, contains the keys present for each locale.",
		" */",
		"export interface Locale "+tstype.Render(tstype.Infer(baseline)),
	)
}

// RenderMessages renders <code>.js exporting the messages of one language.
func RenderMessages(f Flavor, code string, doc *jsonvalue.Object) string {
	body := string(jsonvalue.MarshalIndent(doc, "  "))

	export := "export const " + code + " = " + body + ";"
	if f == CommonJS {
		export = "module.exports." + code + " = " + body + ";"
	}

	return lines(
		"// @ts-check",
		"",
		`/** @import { Locale } from "./locale.js"; */`,
		"",
		"/**",
		" * Contains the localized messages for the locale "+code+".",
		" * @type {Locale}",
		" */",
		export,
	)
}

// RenderDeclaration renders <code>.d.ts. Both flavors share the same text.
func RenderDeclaration(code string) string {
	return lines(
		`import type { Locale } from "./locale.js";`,
		"",
		"/**",
		" * Contains the localized messages for the locale "+code+".",
		" */",
		"export declare const "+code+": Locale;",
	)
}

// RenderAll renders all.js importing every language and exporting them
// keyed by code. codes must already be sorted.
func RenderAll(f Flavor, codes []string) string {
	out := []string{"// @ts-check", ""}

	for _, code := range codes {
		if f == CommonJS {
			out = append(out, "const "+code+` = require("./`+code+`.js").`+code+";")
		} else {
			out = append(out, "import { "+code+` } from "./`+code+`.js";`)
		}
	}

	out = append(out,
		"",
		"/**",
		" * An object with all messages for all languages.",
		" * The key is the language code, the value the messages.",
		" */",
	)
	if f == CommonJS {
		out = append(out, "module.exports.all = {")
	} else {
		out = append(out, "export const all = {")
	}

	for _, code := range codes {
		out = append(out, "  "+code+",")
		if dashed := locale.DashCase(code); dashed != code {
			out = append(out, `  "`+dashed+`": `+code+",")
		}
	}
	out = append(out, "};")

	return lines(out...)
}

// RenderAllDeclaration renders all.d.ts with the AllLocales interface.
func RenderAllDeclaration(codes []string) string {
	out := []string{`import type { Locale } from "./locale.js";`, "", "export interface AllLocales {"}

	for _, code := range codes {
		doc := []string{
			"  /**",
			"   * The localized messages for the language `" + code + "`.",
			"   */",
		}
		out = append(out, doc...)
		out = append(out, "  "+code+": Locale;")
		if dashed := locale.DashCase(code); dashed != code {
			out = append(out, doc...)
			out = append(out, `  "`+dashed+`": Locale;`)
		}
	}

	out = append(out,
		"}",
		"",
		"/**",
		" * An object with all messages for all languages.",
		" * The key is the language code, the value the messages.",
		" */",
		"export declare const all: AllLocales;",
	)

	return lines(out...)
}

// lines joins ls with newlines and terminates the file with one.
func lines(ls ...string) string {
	return strings.Join(ls, "\n") + "\n"
}
