package translate

import (
	"context"
	"strings"

	"golang.org/x/text/language"
)

// Translator translates text into a target language.
type Translator interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

// Func adapts a function to the Translator interface.
type Func func(ctx context.Context, text, target string) (string, error)

// Translate implements Translator.
func (f Func) Translate(ctx context.Context, text, target string) (string, error) {
	return f(ctx, text, target)
}

// Identity returns a Translator that echoes the source text.
func Identity() Translator {
	return Func(func(_ context.Context, text, _ string) (string, error) {
		return text, nil
	})
}

// TargetCode converts a language code in file-name form to the tag sent
// upstream: "pt_br" and "pt-br" become "pt-BR". Unparseable codes are
// returned dashed but otherwise untouched.
func TargetCode(code string) string {
	dashed := strings.ReplaceAll(strings.TrimSpace(code), "_", "-")
	tag, err := language.Parse(dashed)
	if err != nil {
		return dashed
	}
	return tag.String()
}

func validate(text, target string) error {
	if text == "" {
		return ErrEmptyText
	}
	if strings.TrimSpace(target) == "" {
		return ErrEmptyTarget
	}
	return nil
}
