package genius

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/santiago-morfe/TaskGeniusApi/internal/config"
	"github.com/santiago-morfe/TaskGeniusApi/internal/domain"
)

const (
	temperature = 0.7
	topP        = 0.9
	topK        = 40

	// Upper bound on a response body we are willing to read.
	maxResponseBytes = 1 << 20
	// Upper bound on the error body copied into logs.
	maxLoggedErrorBytes = 2048
)

// Client is the gateway to the external text-generation endpoint.
// It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	cfg        config.Gemini
	log        *slog.Logger
}

// templatedRequest is everything that differs between operations.
type templatedRequest struct {
	op              string
	prompt          string
	maxOutputTokens int
	fallback        string
}

// NewClient builds a gateway. A nil httpClient gets a default client; the
// per-call deadline always comes from cfg.Timeout.
func NewClient(cfg config.Gemini, httpClient *http.Client, log *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		httpClient: httpClient,
		cfg:        cfg,
		log:        log.With("component", "genius"),
	}
}

// GetAdvice asks for organizing advice over a list of tasks.
func (c *Client) GetAdvice(ctx context.Context, tasks []TaskDetail) (string, error) {
	if len(tasks) == 0 {
		return "", domain.NewValidationError("task list cannot be empty")
	}
	return c.execute(ctx, adviceRequest(tasks))
}

func (c *Client) GetTitleSuggestion(ctx context.Context, description string) (string, error) {
	if err := requireText("task description", description); err != nil {
		return "", err
	}
	return c.execute(ctx, titleRequest(description))
}

func (c *Client) GetDescriptionFormatting(ctx context.Context, description string) (string, error) {
	if err := requireText("task description", description); err != nil {
		return "", err
	}
	return c.execute(ctx, descriptionRequest(description))
}

func (c *Client) GetAdviceForTask(ctx context.Context, description string) (string, error) {
	if err := requireText("task description", description); err != nil {
		return "", err
	}
	return c.execute(ctx, taskAdviceRequest(description))
}

func (c *Client) GetAnswerToQuestion(ctx context.Context, tasks []TaskDetail, question string) (string, error) {
	if len(tasks) == 0 {
		return "", domain.NewValidationError("task list cannot be empty")
	}
	if err := requireText("question", question); err != nil {
		return "", err
	}
	return c.execute(ctx, answerRequest(tasks, question))
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return domain.NewValidationError("%s cannot be empty", field)
	}
	return nil
}

// execute sends one templated request and extracts the text result. An
// empty or malformed-but-decodable answer yields the fallback string.
func (c *Client) execute(ctx context.Context, req templatedRequest) (string, error) {
	payload, err := json.Marshal(generateContentRequest{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: req.prompt}},
		}},
		GenerationConfig: generationConfig{
			Temperature:     temperature,
			MaxOutputTokens: req.maxOutputTokens,
			TopP:            topP,
			TopK:            topK,
		},
	})
	if err != nil {
		return "", &Error{Op: req.op, Err: fmt.Errorf("encode request: %w", err)}
	}

	redacted := c.redactedEndpoint()
	c.log.Debug("sending request", "op", req.op, "url", redacted, "payload", string(payload))

	body, err := c.post(ctx, req.op, payload)
	if err != nil {
		return "", err
	}

	var response generateContentResponse
	if err := json.Unmarshal(body, &response); err != nil {
		c.log.Error("cannot decode response", "op", req.op, "url", redacted, "payload", string(payload), "error", err)
		return "", &Error{Op: req.op, Err: fmt.Errorf("decode response: %w", err)}
	}

	text := strings.TrimSpace(firstCandidateText(&response))
	if text == "" {
		c.log.Warn("empty response, using fallback", "op", req.op)
		return req.fallback, nil
	}
	return text, nil
}

// post performs the HTTP call under the configured timeout and returns
// the body of a 2xx response. Failures are logged here and nowhere else.
func (c *Client) post(ctx context.Context, op string, payload []byte) ([]byte, error) {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(payload))
	if err != nil {
		return nil, &Error{Op: op, Err: c.scrub(err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		err = &Error{Op: op, Err: c.scrub(err)}
		c.log.Error("request failed", "op", op, "url", c.redactedEndpoint(), "payload", string(payload), "error", err)
		return nil, err
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		err = &Error{Op: op, StatusCode: httpResp.StatusCode, Err: c.scrub(err)}
		c.log.Error("cannot read response", "op", op, "url", c.redactedEndpoint(), "error", err)
		return nil, err
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		c.log.Error("non-success status",
			"op", op,
			"status", httpResp.StatusCode,
			"url", c.redactedEndpoint(),
			"payload", string(payload),
			"response", truncate(body, maxLoggedErrorBytes))
		return nil, classifyStatus(op, httpResp.StatusCode)
	}
	return body, nil
}

// endpoint is {baseUrl}{model}?key={apiKey}.
func (c *Client) endpoint() string {
	return c.cfg.BaseURL + c.cfg.Model + "?key=" + url.QueryEscape(c.cfg.APIKey)
}

func (c *Client) redactedEndpoint() string {
	return c.cfg.BaseURL + c.cfg.Model + "?key=REDACTED"
}

// scrub replaces the endpoint inside transport errors, which embed the
// request URL and therefore the API key.
func (c *Client) scrub(err error) error {
	if urlErr, ok := err.(*url.Error); ok {
		return &url.Error{Op: urlErr.Op, URL: c.redactedEndpoint(), Err: urlErr.Err}
	}
	return err
}

func truncate(body []byte, limit int) string {
	if len(body) <= limit {
		return string(body)
	}
	return string(body[:limit]) + "..."
}
