package usecase

import (
	"context"
	"errors"
	"testing"

	"crisis-alert-srv/internal/alert"
	"crisis-alert-srv/internal/chat"
	"crisis-alert-srv/internal/metrics"
	"crisis-alert-srv/internal/model"
	"crisis-alert-srv/internal/risk"
	"crisis-alert-srv/internal/riskevent"
	"crisis-alert-srv/pkg/llm"
	"crisis-alert-srv/pkg/log"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAlert struct {
	calls   []alert.RiskAlertInput
	outcome model.DeliveryOutcome
}

func (f *fakeAlert) DispatchRiskAlert(_ context.Context, in alert.RiskAlertInput) model.DeliveryOutcome {
	f.calls = append(f.calls, in)
	return f.outcome
}

func (f *fakeAlert) AcknowledgeStatus(context.Context, alert.StatusCallbackInput) error { return nil }

type fakeEvents struct {
	records []riskevent.RecordInput
}

func (f *fakeEvents) Record(_ context.Context, in riskevent.RecordInput) {
	f.records = append(f.records, in)
}

func (f *fakeEvents) List(context.Context, riskevent.ListInput) ([]model.RiskEvent, error) {
	return nil, nil
}

type fakeLLM struct {
	calls int
	reply string
	err   error
}

func (f *fakeLLM) Reply(context.Context, llm.ReplyInput) (string, error) {
	f.calls++
	return f.reply, f.err
}

func (f *fakeLLM) Configured() bool { return true }

type fixture struct {
	alert   *fakeAlert
	events  *fakeEvents
	llm     *fakeLLM
	metrics *metrics.Metrics
	uc      chat.UseCase
}

func newFixture(outcome model.DeliveryOutcome) *fixture {
	f := &fixture{
		alert:   &fakeAlert{outcome: outcome},
		events:  &fakeEvents{},
		llm:     &fakeLLM{reply: "Estoy aquí para escucharte."},
		metrics: metrics.New(),
	}
	f.uc = New(log.NewNop(), nil, nil, f.alert, f.events, f.llm, f.metrics)
	return f
}

var delivered = model.DeliveryOutcome{
	Primary:   model.ChannelResult{Channel: model.ChannelPrimary, OK: true},
	Secondary: model.ChannelResult{Channel: model.ChannelSecondary, OK: true},
}

func TestChat_LowRiskFallsThroughToGeneratedReply(t *testing.T) {
	f := newFixture(delivered)

	out, err := f.uc.Chat(context.Background(), chat.ChatInput{Message: "Hola, ¿cómo estás?", UserID: "user-1"})
	require.NoError(t, err)

	assert.Equal(t, model.RiskLevelLow, out.Assessment.Level)
	assert.Equal(t, 0, out.Assessment.Score)
	assert.Equal(t, "Estoy aquí para escucharte.", out.Response)
	assert.False(t, out.IsEmergencyResponse)
	assert.False(t, out.AlertSent)
	assert.Empty(t, f.alert.calls)
	assert.Empty(t, f.events.records)
	assert.Equal(t, 1, f.llm.calls)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Assessments().WithLabelValues("LOW")))
}

func TestChat_CriticalReplacesReply(t *testing.T) {
	f := newFixture(delivered)

	out, err := f.uc.Chat(context.Background(), chat.ChatInput{
		Message:   "Quiero morirme, no vale la pena vivir",
		UserID:    "user-1",
		SessionID: "sess-1",
	})
	require.NoError(t, err)

	assert.Equal(t, model.RiskLevelCritical, out.Assessment.Level)
	assert.GreaterOrEqual(t, out.Assessment.Score, 20)
	assert.Contains(t, out.Assessment.Triggers, "quiero morirme")
	assert.Contains(t, out.Assessment.Triggers, "no vale la pena vivir")
	assert.True(t, out.IsEmergencyResponse)
	assert.True(t, out.AlertSent)
	assert.Contains(t, out.Response, "112")
	assert.Equal(t, risk.DefaultResponses().EmergencyResponse("es", model.RiskLevelCritical), out.Response)
	assert.Zero(t, f.llm.calls)

	require.Len(t, f.alert.calls, 1)
	assert.Equal(t, "user-1", f.alert.calls[0].UserID)
	assert.Equal(t, "sess-1", f.alert.calls[0].SessionID)

	require.Len(t, f.events.records, 1)
	assert.Equal(t, model.RiskLevelCritical, f.events.records[0].Assessment.Level)
	assert.True(t, f.events.records[0].Outcome.Delivered())
}

func TestChat_UndeliveredAlertStillRecorded(t *testing.T) {
	f := newFixture(model.DeliveryOutcome{})

	out, err := f.uc.Chat(context.Background(), chat.ChatInput{Message: "estoy triste y con ansiedad", UserID: "user-2"})
	require.NoError(t, err)

	assert.Equal(t, model.RiskLevelMedium, out.Assessment.Level)
	assert.False(t, out.AlertSent)
	assert.True(t, out.IsEmergencyResponse)
	require.Len(t, f.events.records, 1)
	assert.False(t, f.events.records[0].Outcome.Delivered())
}

func TestChat_LocalizedEmergencyResponse(t *testing.T) {
	f := newFixture(delivered)

	out, err := f.uc.Chat(context.Background(), chat.ChatInput{
		Message: "Quiero morirme",
		UserID:  "user-1",
		Lang:    "en",
	})
	require.NoError(t, err)
	assert.Equal(t, risk.DefaultResponses().EmergencyResponse("en", out.Assessment.Level), out.Response)
}

func TestChat_LLMFailureUsesFallback(t *testing.T) {
	f := newFixture(delivered)
	f.llm.err = errors.New("timeout")

	out, err := f.uc.Chat(context.Background(), chat.ChatInput{Message: "Hola", UserID: "user-1"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Response)
	assert.Equal(t, risk.DefaultResponses().Catalog("es").Fallback, out.Response)
	assert.False(t, out.IsEmergencyResponse)
}

func TestChat_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		input   chat.ChatInput
		wantErr error
	}{
		{name: "empty message", input: chat.ChatInput{Message: "  ", UserID: "u"}, wantErr: chat.ErrMessageRequired},
		{name: "empty user", input: chat.ChatInput{Message: "hola"}, wantErr: chat.ErrUserIDRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(delivered)
			_, err := f.uc.Chat(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, chat.ErrInvalidInput)
			assert.Empty(t, f.alert.calls)
		})
	}
}

func TestAssess_NoSideEffects(t *testing.T) {
	f := newFixture(delivered)

	a := f.uc.Assess(context.Background(), "quiero morirme")
	assert.Equal(t, model.RiskLevelCritical, a.Level)
	assert.Empty(t, f.alert.calls)
	assert.Empty(t, f.events.records)
}
