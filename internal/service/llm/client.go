package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	config_llm "qa_ai_service/internal/config/llm"
)

const defaultBaseURL = "https://api.openai.com/v1"

// Client wraps the OpenAI-compatible chat completion API.
type Client struct {
	api     openai.Client
	apiKey  string
	baseURL string
	httpc   *http.Client
}

type Option func(*Client)

// WithBaseURL points the client at an OpenAI-compatible API other than the
// official one (self-hosted gateways, test servers).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSpace(baseURL)
	}
}

func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// New creates a completion client for the given API key. The key is injected
// here instead of being read from the environment so wiring stays explicit;
// an empty key is a construction error.
func New(apiKey string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("api key is required")
	}

	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}
	if _, err := validateBaseURL(c.baseURL); err != nil {
		return nil, fmt.Errorf("base URL: %w", err)
	}

	requestOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		// The SDK resolves endpoint paths relative to the base URL, so the
		// trailing slash is required to keep a /v1 suffix intact.
		option.WithBaseURL(strings.TrimRight(c.baseURL, "/") + "/"),
	}
	if c.httpc != nil {
		requestOpts = append(requestOpts, option.WithHTTPClient(c.httpc))
	}
	c.api = openai.NewClient(requestOpts...)

	return c, nil
}

// Complete submits the two-message conversation for question and returns the
// first choice's text. An empty model falls back to the configured default.
// Failures from the API or the transport are returned to the caller as-is.
func (c *Client) Complete(ctx context.Context, question, model string) (string, error) {
	if strings.TrimSpace(model) == "" {
		model = config_llm.DefaultModel
	}

	completion, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: Conversation(question),
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("completion response contains no choices")
	}
	return completion.Choices[0].Message.Content, nil
}

// Conversation builds the fixed prompt for a question: the persona system
// message followed by a user message carrying the question verbatim.
func Conversation(question string) []openai.ChatCompletionMessageParamUnion {
	return []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(config_llm.Prompt),
		openai.UserMessage(question),
	}
}

// Preflight verifies the API is reachable and accepts the credential.
// Meant to run once at startup so a bad key aborts the process instead of
// failing every request.
func (c *Client) Preflight(ctx context.Context) error {
	if err := preflightOpenAICompatible(ctx, c.baseURL, c.apiKey, c.httpc); err != nil {
		return fmt.Errorf("completion API preflight failed: %w", err)
	}
	return nil
}

/* ------------------------ helpers ------------------------ */

func validateBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid URL: %q", raw)
	}
	return u, nil
}

// Lightweight availability check for an OpenAI-compatible API: GET <base>/models
func preflightOpenAICompatible(parent context.Context, baseURL, apiKey string, httpc *http.Client) error {
	ctx, cancel := context.WithTimeout(parent, 5*time.Second)
	defer cancel()

	u := strings.TrimRight(baseURL, "/") + "/models"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Accept", "application/json")

	if httpc == nil {
		httpc = http.DefaultClient
	}
	res, err := httpc.Do(req)
	if err != nil {
		return err
	}
	defer func() { io.Copy(io.Discard, res.Body); res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d from %s", res.StatusCode, u)
	}
	return nil
}
