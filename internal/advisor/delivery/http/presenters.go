package http

import (
	"strings"

	"apple-orchard-advisor/internal/advisor"
)

const newSession = "new_session"

// --- Request DTOs ---

type chatReq struct {
	DeviceID       string  `json:"device_id"`
	Message        string  `json:"message"`
	ConversationID *string `json:"conversation_id"`
}

func (r chatReq) validate() error {
	if strings.TrimSpace(r.DeviceID) == "" {
		return errDeviceIDRequired
	}
	return nil
}

func (r chatReq) toInput() advisor.ChatInput {
	return advisor.ChatInput{
		DeviceID: r.DeviceID,
		Message:  r.Message,
	}
}

func (r chatReq) conversationID() string {
	if r.ConversationID == nil || *r.ConversationID == "" {
		return newSession
	}
	return *r.ConversationID
}

// --- Response DTOs ---

type chatResp struct {
	Response       string `json:"response"`
	AdvisorUsed    string `json:"advisor_used"`
	SensorDataUsed bool   `json:"sensor_data_used"`
	ConversationID string `json:"conversation_id"`
	DeviceID       string `json:"device_id"`
}

func (h *handler) newChatResp(req chatReq, out advisor.ChatOutput) chatResp {
	return chatResp{
		Response:       out.Response,
		AdvisorUsed:    out.Advisor.String(),
		SensorDataUsed: out.SensorDataUsed,
		ConversationID: req.conversationID(),
		DeviceID:       req.DeviceID,
	}
}
