// Package translate provides machine-translation clients behind a single
// Translator interface, plus a translation memory that avoids repeated calls.
//
// # Backends
//
// REST talks to the Google Cloud Translation v2 REST endpoint with an API key
// passed as a URL parameter:
//
//	t := translate.NewREST(os.Getenv("TRANSLATE_API_KEY"),
//		translate.WithTimeout(10*time.Second),
//	)
//	out, err := t.Translate(ctx, "Hello", "de")
//
// Cloud uses the official cloud.google.com/go/translate client, which also
// supports Application Default Credentials:
//
//	t, err := translate.NewCloud(ctx, apiKey)
//	defer t.Close()
//
// Identity returns the source text unchanged and is useful for dry runs.
//
// # Translation Memory
//
// Cached wraps any Translator with a Memo. Identical concurrent requests
// are collapsed into one upstream call and successful results are stored:
//
//	memo := translate.NewMemoryMemo(10_000)
//	t = translate.Cached(t, memo)
//
// NewRedisMemo keeps the memory in Redis so it survives between runs.
//
// Language codes are accepted in file-name form (pt_br, pt-br) and sent
// upstream as BCP 47 tags (pt-BR).
package translate
