package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"crisis-alert-srv/internal/alert"
	"crisis-alert-srv/internal/model"
	"crisis-alert-srv/pkg/log"
	"crisis-alert-srv/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	got alert.StatusCallbackInput
	err error
}

func (f *fakeUseCase) DispatchRiskAlert(context.Context, alert.RiskAlertInput) model.DeliveryOutcome {
	return model.DeliveryOutcome{}
}

func (f *fakeUseCase) AcknowledgeStatus(_ context.Context, in alert.StatusCallbackInput) error {
	f.got = in
	return f.err
}

func post(t *testing.T, uc alert.UseCase, body string) (*httptest.ResponseRecorder, response.Resp) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(uc, log.NewNop()).RegisterRoutes(r.Group("/internal/api/v1"))

	req := httptest.NewRequest(http.MethodPost, "/internal/api/v1/webhook/alert-status", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestStatusCallback(t *testing.T) {
	uc := &fakeUseCase{}
	w, resp := post(t, uc, `{"type":"telegram_sent","data":{"userId":"u1"}}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, alert.CallbackTelegramSent, uc.got.Type)
	assert.Equal(t, "u1", uc.got.Data["userId"])
	assert.Equal(t, map[string]any{"success": true}, resp.Data)
}

func TestStatusCallback_Errors(t *testing.T) {
	w, resp := post(t, &fakeUseCase{}, `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ErrCodeInvalidBody, resp.ErrorCode)

	w, resp = post(t, &fakeUseCase{err: alert.ErrInvalidCallback}, `{"data":{}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ErrCodeInvalidCallback, resp.ErrorCode)
}
