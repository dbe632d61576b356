package http

import "alert-srv/internal/notification"

type digestReq struct {
	Force bool `json:"force"`
}

func (r digestReq) toInput() notification.DigestInput {
	return notification.DigestInput{Force: r.Force}
}

type digestResp struct {
	Sent       bool   `json:"sent"`
	AlertCount int    `json:"alert_count"`
	Reason     string `json:"reason,omitempty"`
}

func (h *Handler) newDigestResp(o notification.DigestOutput) digestResp {
	return digestResp{
		Sent:       o.Sent,
		AlertCount: o.AlertCount,
		Reason:     o.Reason,
	}
}
