package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"crisis-alert-srv/internal/model"
	"crisis-alert-srv/internal/riskevent"
	"crisis-alert-srv/pkg/log"
	"crisis-alert-srv/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	got riskevent.ListInput
	out []model.RiskEvent
	err error
}

func (f *fakeUseCase) Record(context.Context, riskevent.RecordInput) {}

func (f *fakeUseCase) List(_ context.Context, in riskevent.ListInput) ([]model.RiskEvent, error) {
	f.got = in
	return f.out, f.err
}

func get(t *testing.T, uc riskevent.UseCase, target string) (*httptest.ResponseRecorder, response.Resp) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(uc, log.NewNop()).RegisterRoutes(r.Group("/internal/api/v1"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestList_OK(t *testing.T) {
	uc := &fakeUseCase{out: []model.RiskEvent{{ID: "e1", Level: model.RiskLevelHigh}}}

	w, resp := get(t, uc, "/internal/api/v1/risk-events?user_id=u1&level=high&limit=10")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, riskevent.ListInput{UserID: "u1", Level: "high", Limit: 10}, uc.got)

	data := resp.Data.(map[string]any)
	assert.Equal(t, float64(1), data["count"])
}

func TestList_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
		wantCode   int
	}{
		{name: "non numeric limit", target: "/internal/api/v1/risk-events?limit=abc", wantStatus: http.StatusBadRequest, wantCode: ErrCodeInvalidQuery},
		{name: "limit too large", target: "/internal/api/v1/risk-events?limit=500", err: riskevent.ErrInvalidLimit, wantStatus: http.StatusBadRequest, wantCode: ErrCodeInvalidLimit},
		{name: "bad level", target: "/internal/api/v1/risk-events?level=x", err: model.ErrInvalidRiskLevel, wantStatus: http.StatusBadRequest, wantCode: ErrCodeInvalidLevel},
		{name: "no store", target: "/internal/api/v1/risk-events", err: riskevent.ErrStoreUnavailable, wantStatus: http.StatusServiceUnavailable, wantCode: ErrCodeStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := get(t, &fakeUseCase{err: tt.err}, tt.target)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, resp.ErrorCode)
		})
	}
}
