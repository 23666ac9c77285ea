package translate

import (
	"context"
	"errors"

	gtranslate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

// Cloud is a Translator backed by the cloud.google.com/go/translate client.
type Cloud struct {
	client *gtranslate.Client
	opts   *options
}

// NewCloud creates a Cloud client. With an empty apiKey the client falls
// back to Application Default Credentials.
func NewCloud(ctx context.Context, apiKey string, opts ...Option) (*Cloud, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	var clientOpts []option.ClientOption
	if apiKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(apiKey))
	}

	client, err := gtranslate.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}

	return &Cloud{client: client, opts: o}, nil
}

// Translate implements Translator.
func (c *Cloud) Translate(ctx context.Context, text, target string) (string, error) {
	if err := validate(text, target); err != nil {
		return "", err
	}

	tag, err := language.Parse(TargetCode(target))
	if err != nil {
		return "", errors.Join(ErrRequestFailed, err)
	}

	if c.opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.timeout)
		defer cancel()
	}

	resp, err := c.client.Translate(ctx, []string{text}, tag, &gtranslate.Options{Format: gtranslate.Text})
	if err != nil {
		return "", errors.Join(ErrRequestFailed, err)
	}
	if len(resp) == 0 {
		return "", ErrEmptyResponse
	}

	return resp[0].Text, nil
}

// Close releases the underlying client.
func (c *Cloud) Close() error {
	return c.client.Close()
}

var _ Translator = (*Cloud)(nil)
