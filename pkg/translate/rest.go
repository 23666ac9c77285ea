package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// REST is a Translator backed by the Cloud Translation v2 REST API.
type REST struct {
	opts   *options
	apiKey string
}

// NewREST creates a REST client authenticated with apiKey.
func NewREST(apiKey string, opts ...Option) *REST {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &REST{apiKey: apiKey, opts: o}
}

type restRequest struct {
	Q      string `json:"q"`
	Target string `json:"target"`
}

type restResponse struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

// Translate implements Translator.
func (r *REST) Translate(ctx context.Context, text, target string) (string, error) {
	if err := validate(text, target); err != nil {
		return "", err
	}

	if r.opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.opts.timeout)
		defer cancel()
	}

	body, err := json.Marshal(restRequest{Q: text, Target: TargetCode(target)})
	if err != nil {
		return "", errors.Join(ErrRequestFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url(), bytes.NewReader(body))
	if err != nil {
		return "", errors.Join(ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	resp, err := r.opts.httpClient.Do(req)
	if err != nil {
		return "", errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Join(ErrRequestFailed, err)
	}

	var out restResponse
	decodeErr := json.Unmarshal(data, &out)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if decodeErr == nil && out.Error != nil {
			apiErr.Message = out.Error.Message
		}
		r.opts.logger.DebugContext(ctx, "translation request rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("target", target),
		)
		return "", apiErr
	}

	if decodeErr != nil {
		return "", fmt.Errorf("%w: %v", ErrDecodeResponse, decodeErr)
	}
	if len(out.Data.Translations) == 0 {
		return "", ErrEmptyResponse
	}

	// The v2 API returns HTML-escaped text unless format=text is requested.
	return html.UnescapeString(out.Data.Translations[0].TranslatedText), nil
}

func (r *REST) url() string {
	u, err := url.Parse(r.opts.endpoint)
	if err != nil {
		return r.opts.endpoint
	}
	q := u.Query()
	if r.apiKey != "" {
		q.Set("key", r.apiKey)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

var _ Translator = (*REST)(nil)
