package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/text/language"

	"github.com/santiagoBatista94/MUSEO-SANTIBatista/internal/adapters/clients"
	"github.com/santiagoBatista94/MUSEO-SANTIBatista/internal/platform/logging"
)

// TranslationClientConfig contains configuration for the translation client.
type TranslationClientConfig struct {
	// Client is the HTTP client to use for requests.
	// The client's BaseURL should point at the translation service root.
	Client *clients.Client

	// Source is the language of the incoming text.
	// Defaults to English if unset.
	Source language.Tag

	// Target is the language to translate into.
	// Defaults to Spanish if unset.
	Target language.Tag

	// Logger is the structured logger.
	Logger *slog.Logger
}

// TranslationClient implements ports.Translator against the machine
// translation service.
//
// The adapter is fail-open: every failure path returns the original text.
// Failures are logged at DEBUG level only, because a degraded translation
// service is expected operation, not an incident.
type TranslationClient struct {
	client *clients.Client
	source string
	target string
	logger *slog.Logger
}

// NewTranslationClient creates a new translation client adapter.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewTranslationClient(cfg TranslationClientConfig) *TranslationClient {
	if cfg.Client == nil {
		panic("TranslationClient: Client is required")
	}

	source := cfg.Source
	if source == language.Und {
		source = language.English
	}

	target := cfg.Target
	if target == language.Und {
		target = language.Spanish
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &TranslationClient{
		client: cfg.Client,
		source: source.String(),
		target: target.String(),
		logger: logger,
	}
}

// translateRequest is the external DTO sent to POST /translate.
type translateRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// translateResponse is the external DTO returned by POST /translate.
type translateResponse struct {
	Translation string `json:"translation"`
}

// Translate translates text from the source to the target language.
// Returns the original text unchanged on any failure.
// Implements ports.Translator.
func (c *TranslationClient) Translate(ctx context.Context, text string) string {
	if text == "" {
		return text
	}

	payload, err := json.Marshal(translateRequest{
		Text:   text,
		Source: c.source,
		Target: c.target,
	})
	if err != nil {
		c.logger.DebugContext(ctx, "translation skipped, encoding failed",
			slog.Any("error", err))

		return text
	}

	c.logger.Log(ctx, logging.LevelTrace, "starting request",
		slog.String("path", "/translate"),
		slog.Int("text_len", len(text)))

	resp, err := c.client.Post(ctx, "/translate", bytes.NewReader(payload))
	if err != nil {
		c.logger.DebugContext(ctx, "translation unavailable, using original text",
			slog.Any("error", err))

		return text
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.logger.DebugContext(ctx, "translation failed, using original text",
			slog.Int("status", resp.StatusCode))

		return text
	}

	var external translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&external); err != nil {
		c.logger.DebugContext(ctx, "translation response malformed, using original text",
			slog.Any("error", err))

		return text
	}

	if external.Translation == "" {
		return text
	}

	return external.Translation
}

// Name returns the health check name for this client.
// Implements ports.HealthChecker.
func (c *TranslationClient) Name() string {
	return "translation-service"
}

// Check performs a health check with a minimal translation request.
// Implements ports.HealthChecker.
func (c *TranslationClient) Check(ctx context.Context) error {
	payload, err := json.Marshal(translateRequest{
		Text:   "ok",
		Source: c.source,
		Target: c.target,
	})
	if err != nil {
		return err
	}

	resp, err := c.client.Post(ctx, "/translate", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("translation service returned status %d", resp.StatusCode)
	}

	return nil
}
