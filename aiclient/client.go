package aiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/ritikbusiness/career-academy-backend-sub003/models"
)

const chatCompletionsPath = "/v1/chat/completions"

// ErrProvider is returned when the AI provider fails or answers with nothing usable.
var ErrProvider = errors.New("ai provider error")

type Config struct {
	URL          string        `yaml:"url"`
	APIKey       string        `yaml:"api_key"`
	Model        string        `yaml:"model"`
	MaxTokens    int           `yaml:"max_tokens"`
	Timeout      time.Duration `yaml:"timeout"`
	MaxRetries   int           `yaml:"max_retries"`
	MaxRetryWait time.Duration `yaml:"max_retry_wait"`
}

type AIClient interface {
	Summarize(ctx context.Context, req models.SummarizeRequest) (*models.AIResponse, error)
	SuggestQuiz(ctx context.Context, req models.QuizSuggestionRequest) (*models.AIResponse, error)
	Explain(ctx context.Context, req models.ExplainRequest) (*models.AIResponse, error)
}

type Client struct {
	conf       Config
	httpClient *http.Client
	logger     lager.Logger
}

var _ AIClient = &Client{}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func NewClient(conf Config, logger lager.Logger) *Client {
	logger = logger.Session("ai-client")

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = conf.MaxRetries
	if conf.MaxRetryWait != 0 {
		retryClient.RetryWaitMax = conf.MaxRetryWait
		retryClient.RetryWaitMin = min(retryClient.RetryWaitMin, conf.MaxRetryWait)
	}
	retryClient.Logger = leveledLoggerAdapter{logger.Session("retryablehttp")}
	retryClient.HTTPClient.Timeout = conf.Timeout
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Client{
		conf:       conf,
		httpClient: retryClient.StandardClient(),
		logger:     logger,
	}
}

func (c *Client) Summarize(ctx context.Context, req models.SummarizeRequest) (*models.AIResponse, error) {
	system := "You are a study assistant. Summarize the learner's material clearly and accurately."
	prompt := fmt.Sprintf("Summarize the following in at most %d words:\n\n%s", req.MaxWords, req.Content)
	return c.complete(ctx, "summarize", system, prompt)
}

func (c *Client) SuggestQuiz(ctx context.Context, req models.QuizSuggestionRequest) (*models.AIResponse, error) {
	system := "You are a teaching assistant who writes multiple choice quiz questions."
	prompt := fmt.Sprintf("Write %d %s multiple choice questions about %q. Give four options per question and mark the correct one.",
		req.QuestionCount, req.Difficulty, req.Topic)
	return c.complete(ctx, "quiz-suggestions", system, prompt)
}

func (c *Client) Explain(ctx context.Context, req models.ExplainRequest) (*models.AIResponse, error) {
	system := "You are a patient tutor."
	prompt := fmt.Sprintf("Explain %q to a %s learner, with one short example.", req.Concept, req.Level)
	return c.complete(ctx, "explain", system, prompt)
}

func (c *Client) complete(ctx context.Context, feature string, system string, prompt string) (*models.AIResponse, error) {
	logger := c.logger.Session("complete", lager.Data{"feature": feature})

	body, err := json.Marshal(chatRequest{
		Model: c.conf.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		MaxTokens: c.conf.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	url := strings.TrimSuffix(c.conf.URL, "/") + chatCompletionsPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.conf.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("failed-to-call-provider", err)
		return nil, fmt.Errorf("%w: %w", ErrProvider, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		logger.Error("provider-returned-error", nil, lager.Data{"status": resp.StatusCode, "body": string(respBody)})
		return nil, fmt.Errorf("%w: status %d", ErrProvider, resp.StatusCode)
	}

	completion := chatResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		logger.Error("failed-to-decode-completion", err)
		return nil, fmt.Errorf("%w: %w", ErrProvider, err)
	}
	if len(completion.Choices) == 0 || strings.TrimSpace(completion.Choices[0].Message.Content) == "" {
		return nil, fmt.Errorf("%w: empty completion", ErrProvider)
	}

	return &models.AIResponse{
		Feature: feature,
		Result:  strings.TrimSpace(completion.Choices[0].Message.Content),
		Model:   completion.Model,
	}, nil
}
