package domain

import "strings"

// SessionState is the lifecycle state the provider reports for one session.
// Anything other than SessionIdle means the agent still has pending activity.
type SessionState string

const (
	SessionIdle SessionState = "idle"
	SessionBusy SessionState = "busy"
)

func (s SessionState) Idle() bool {
	return s == SessionIdle
}

const (
	PartText = "text"
	PartTool = "tool"
)

const (
	ToolCompleted = "completed"
	ToolErrored   = "error"
)

// Part is one fragment of an agent message: plain text or a tool invocation.
type Part struct {
	Type  string
	Text  string
	Tool  string
	State ToolState
}

// ToolState carries the terminal state of a tool part.
type ToolState struct {
	Status string
	Output string
	Error  string
}

type Message struct {
	ID    string
	Parts []Part
}

// CommandInvocation names a provider-side command together with the
// agent/model pair it runs under.
type CommandInvocation struct {
	Name      string
	Arguments string
	Agent     string
	Model     ModelSpec
}

// CommandResult is the immediate response to a command: parts returned inline
// plus the identifier of the message holding the full output.
type CommandResult struct {
	Parts     []Part
	MessageID string
}

// CollectText flattens message parts into one newline-joined text. Text parts
// contribute their text; tool parts contribute their completed output, or the
// error string when the tool failed, so tool failures stay visible to
// whatever inspects the output instead of vanishing.
func CollectText(parts []Part) string {
	fragments := make([]string, 0, len(parts))

	for _, part := range parts {
		switch part.Type {
		case PartText:
			if part.Text != "" {
				fragments = append(fragments, part.Text)
			}
		case PartTool:
			if part.State.Status == ToolErrored && part.State.Error != "" {
				fragments = append(fragments, part.State.Error)
				continue
			}
			if part.State.Status == ToolCompleted && part.State.Output != "" {
				fragments = append(fragments, part.State.Output)
			}
		}
	}

	return strings.Join(fragments, "\n")
}
