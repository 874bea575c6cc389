package usecase

import (
	"crisis-alert-srv/internal/alert"
	"crisis-alert-srv/internal/chat"
	"crisis-alert-srv/internal/metrics"
	"crisis-alert-srv/internal/risk"
	"crisis-alert-srv/internal/riskevent"
	"crisis-alert-srv/pkg/llm"
	"crisis-alert-srv/pkg/log"
)

type implUseCase struct {
	l         log.Logger
	scorer    *risk.Scorer
	responses *risk.Responses
	alertUC   alert.UseCase
	eventUC   riskevent.UseCase
	llm       llm.IClient
	metrics   *metrics.Metrics
}

func New(l log.Logger, scorer *risk.Scorer, responses *risk.Responses, alertUC alert.UseCase, eventUC riskevent.UseCase, llmClient llm.IClient, m *metrics.Metrics) chat.UseCase {
	if scorer == nil {
		scorer = risk.NewScorer(nil)
	}
	if responses == nil {
		responses = risk.DefaultResponses()
	}
	return &implUseCase{
		l:         l,
		scorer:    scorer,
		responses: responses,
		alertUC:   alertUC,
		eventUC:   eventUC,
		llm:       llmClient,
		metrics:   m,
	}
}
