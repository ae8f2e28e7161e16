package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// ChatbotRequest keeps question raw so that numbers and other JSON values are
// echoed back instead of being rejected.
type ChatbotRequest struct {
	Question json.RawMessage `json:"question"`
}

type ChatbotResponse struct {
	Answer string `json:"answer"`
}

// ChatbotAsk always answers 200; an unreadable body counts as an empty question.
func (h *Handlers) ChatbotAsk(w http.ResponseWriter, r *http.Request) {
	var req ChatbotRequest
	if err := decodeJSON(r, &req); err != nil {
		req = ChatbotRequest{}
	}

	answer := h.ChatbotService.Ask(r.Context(), questionText(req.Question))

	writeSuccess(w, ChatbotResponse{Answer: answer}, http.StatusOK)
}

// questionText turns the raw question into text. Empty values (null, false,
// 0, "", [] and {}) count as no question.
func questionText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return ""
	}
	switch compact.String() {
	case "null", "false", "0", "[]", "{}":
		return ""
	}
	return compact.String()
}
