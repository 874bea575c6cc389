package webhook

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

func (w *webhookImpl) URL() string {
	return w.url
}

func (w *webhookImpl) Close() error {
	if c := w.client.GetClient(); c != nil {
		c.CloseIdleConnections()
	}
	return nil
}

func (w *webhookImpl) Post(ctx context.Context, payload any) error {
	resp, err := w.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post(w.url)
	if err != nil {
		return fmt.Errorf("webhook: send failed: %w", err)
	}
	if !resp.IsSuccess() {
		return &StatusError{StatusCode: resp.StatusCode(), Body: truncate(resp.Body(), maxErrorBodyLen)}
	}
	return nil
}

// failed retries transport errors and every non-2xx answer.
func failed(resp *resty.Response, err error) bool {
	return err != nil || resp == nil || !resp.IsSuccess()
}

func (w *webhookImpl) logRetry(resp *resty.Response, err error) {
	if w.l == nil || resp == nil {
		return
	}
	ctx := resp.Request.Context()
	if err != nil {
		w.l.Warnf(ctx, "pkg.webhook.Post: attempt %d failed: %v", resp.Request.Attempt, err)
		return
	}
	w.l.Warnf(ctx, "pkg.webhook.Post: attempt %d answered %d", resp.Request.Attempt, resp.StatusCode())
}

func truncate(b []byte, max int) string {
	if len(b) > max {
		b = b[:max]
	}
	return string(b)
}
