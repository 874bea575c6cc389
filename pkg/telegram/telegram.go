package telegram

import (
	"context"
	"errors"
	"strings"
)

func (b *botImpl) SendMessage(ctx context.Context, chatID, text string) error {
	if strings.TrimSpace(chatID) == "" {
		return ErrChatIDRequired
	}

	var out apiResponse
	resp, err := b.client.R().
		SetContext(ctx).
		SetBody(sendMessageRequest{ChatID: chatID, Text: text, ParseMode: b.parseMode}).
		SetResult(&out).
		SetError(&out).
		Post("/bot" + b.token + "/sendMessage")
	if err != nil {
		// Transport errors embed the request URL, which carries the token.
		return errors.New("telegram: send failed: " + b.redact(err.Error()))
	}

	if !out.OK {
		return &APIError{
			StatusCode:  resp.StatusCode(),
			ErrorCode:   out.ErrorCode,
			Description: out.Description,
		}
	}
	if b.l != nil {
		b.l.Debugf(ctx, "pkg.telegram.SendMessage: delivered to chat %s", chatID)
	}
	return nil
}

func (b *botImpl) Close() error {
	if c := b.client.GetClient(); c != nil {
		c.CloseIdleConnections()
	}
	return nil
}

func (b *botImpl) redact(s string) string {
	return strings.ReplaceAll(s, b.token, redacted)
}

// EscapeHTML escapes user-provided text for the HTML parse mode.
func EscapeHTML(s string) string {
	return htmlReplacer.Replace(s)
}

var htmlReplacer = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

