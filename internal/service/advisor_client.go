package service

import (
	"context"
	"errors"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/noah-isme/course-planner-api/pkg/config"
)

// OpenAIAdvisorClient talks to an OpenAI-compatible chat completion endpoint.
// Any service exposing that wire format works, including self-hosted ones.
type OpenAIAdvisorClient struct {
	client openai.Client
	model  string
}

// NewOpenAIAdvisorClient builds a client from advisor configuration.
func NewOpenAIAdvisorClient(cfg config.AdvisorConfig) (*OpenAIAdvisorClient, error) {
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, errors.New("advisor model is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	return &OpenAIAdvisorClient{client: openai.NewClient(opts...), model: cfg.Model}, nil
}

// Complete sends one system/user exchange and returns the assistant text.
func (c *OpenAIAdvisorClient) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
