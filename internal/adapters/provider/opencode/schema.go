package opencode

import (
	"strings"

	"github.com/bnema/opencode-milestone-cli/internal/domain"
)

type createInstanceRequest struct {
	Directory string `json:"directory"`
}

type createSessionRequest struct {
	Title string `json:"title"`
}

type modelRef struct {
	ProviderID string `json:"providerID"`
	ModelID    string `json:"modelID"`
}

type promptRequest struct {
	Model modelRef      `json:"model"`
	Agent string        `json:"agent,omitempty"`
	Parts []partPayload `json:"parts"`
}

type commandRequest struct {
	Command   string   `json:"command"`
	Arguments string   `json:"arguments,omitempty"`
	Agent     string   `json:"agent,omitempty"`
	Model     modelRef `json:"model"`
}

type messagePayload struct {
	ID    string        `json:"id"`
	Info  *messageInfo  `json:"info,omitempty"`
	Parts []partPayload `json:"parts"`
}

type messageInfo struct {
	ID string `json:"id"`
}

func (m messagePayload) messageID() string {
	if m.ID != "" {
		return m.ID
	}
	if m.Info != nil {
		return m.Info.ID
	}

	return ""
}

type partPayload struct {
	Type  string            `json:"type"`
	Text  string            `json:"text,omitempty"`
	Tool  string            `json:"tool,omitempty"`
	State *toolStatePayload `json:"state,omitempty"`
}

type toolStatePayload struct {
	Status string `json:"status"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

type statusPayload struct {
	Sessions map[string]string `json:"sessions"`
}

func partsToDomain(payloads []partPayload) []domain.Part {
	if len(payloads) == 0 {
		return nil
	}

	parts := make([]domain.Part, 0, len(payloads))
	for _, payload := range payloads {
		part := domain.Part{Type: payload.Type, Text: payload.Text, Tool: payload.Tool}
		if payload.State != nil {
			part.State = domain.ToolState{
				Status: payload.State.Status,
				Output: payload.State.Output,
				Error:  payload.State.Error,
			}
		}
		parts = append(parts, part)
	}

	return parts
}

// idCandidateKeys lists every field name servers have been seen using for
// freshly created resource IDs, in probe order.
var idCandidateKeys = []string{"id", "sessionID", "session_id", "sessionId"}

// idContainerKeys lists envelope fields that may nest the resource object.
var idContainerKeys = []string{"info", "session", "data"}

// idFromPayload digs a resource ID out of a creation response. Server
// versions disagree on both the field name and the nesting, so every known
// shape is probed before giving up.
func idFromPayload(payload map[string]any) string {
	if id := idFromObject(payload); id != "" {
		return id
	}

	for _, container := range idContainerKeys {
		nested, ok := payload[container].(map[string]any)
		if !ok {
			continue
		}
		if id := idFromObject(nested); id != "" {
			return id
		}
	}

	return ""
}

func idFromObject(object map[string]any) string {
	for _, key := range idCandidateKeys {
		if id, ok := object[key].(string); ok && strings.TrimSpace(id) != "" {
			return id
		}
	}

	return ""
}
