package llm

import (
	"context"
	"fmt"
	"strings"
)

func (c *clientImpl) Configured() bool {
	return c.cfg.APIKey != ""
}

func (c *clientImpl) Reply(ctx context.Context, in ReplyInput) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}
	if strings.TrimSpace(in.Message) == "" {
		return "", ErrEmptyMessage
	}

	emotional := strings.TrimSpace(in.EmotionalContext)
	if emotional == "" {
		emotional = unspecifiedContext
	}
	system := c.cfg.SystemPrompt
	if strings.Contains(system, "%s") {
		system = fmt.Sprintf(system, emotional)
	}

	var (
		out     completionResponse
		failure errorResponse
	)
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(completionRequest{
			Model: c.cfg.Model,
			Messages: []chatMessage{
				{Role: roleSystem, Content: system},
				{Role: roleUser, Content: in.Message},
			},
			Temperature: c.cfg.Temperature,
			MaxTokens:   c.cfg.MaxTokens,
		}).
		SetResult(&out).
		SetError(&failure).
		Post("/chat/completions")
	if err != nil {
		c.l.Errorf(ctx, "pkg.llm.Reply: %v", err)
		return "", fmt.Errorf("llm: request failed: %w", err)
	}
	if resp.IsError() {
		msg := failure.Error.Message
		if msg == "" {
			msg = resp.Status()
		}
		return "", &APIError{StatusCode: resp.StatusCode(), Message: msg}
	}

	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", ErrEmptyReply
	}
	return out.Choices[0].Message.Content, nil
}
