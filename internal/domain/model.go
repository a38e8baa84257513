package domain

import (
	"fmt"
	"strings"
)

// ModelSpec identifies a model as the provider/model pair the agent server
// expects, e.g. "anthropic/claude-sonnet-4-5".
type ModelSpec struct {
	Provider string
	Model    string
}

// ParseModelSpec splits a model reference on its first slash. Both halves
// must be non-empty.
func ParseModelSpec(ref string) (ModelSpec, error) {
	provider, model, found := strings.Cut(ref, "/")
	if !found || provider == "" || model == "" {
		return ModelSpec{}, fmt.Errorf("%w: %q (want provider/model)", ErrInvalidModelRef, ref)
	}

	return ModelSpec{Provider: provider, Model: model}, nil
}

func (m ModelSpec) String() string {
	return m.Provider + "/" + m.Model
}

// AgentProfile pairs a model with the agent persona one phase runs under.
type AgentProfile struct {
	Model ModelSpec
	Agent string
}
