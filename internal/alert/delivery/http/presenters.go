package http

import "crisis-alert-srv/internal/alert"

type StatusCallbackReq struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}

func (r StatusCallbackReq) toInput() alert.StatusCallbackInput {
	return alert.StatusCallbackInput{Type: r.Type, Data: r.Data}
}

type StatusCallbackResp struct {
	Success bool `json:"success"`
}
