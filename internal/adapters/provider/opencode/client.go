// Package opencode talks to an opencode server over its HTTP API. Instances
// are acquired per project directory; every session call goes through
// instance-scoped routes so parallel instances never see each other's
// sessions.
package opencode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/opencode-milestone-cli/internal/domain"
	"github.com/bnema/opencode-milestone-cli/internal/ports"
)

const (
	responseBodyLimit  = 1 << 20
	defaultHTTPTimeout = 30 * time.Second
)

// Provider acquires opencode instances over HTTP.
type Provider struct {
	baseURL string
	client  *http.Client
}

var _ ports.SessionProvider = (*Provider)(nil)

func NewProvider(baseURL string, client *http.Client) *Provider {
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}

	return &Provider{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (p *Provider) Acquire(ctx context.Context, directory string) (ports.SessionInstance, error) {
	payload, err := doJSON(ctx, p.client, http.MethodPost, p.baseURL+"/instances", createInstanceRequest{Directory: directory})
	if err != nil {
		return nil, err
	}

	var decoded map[string]any
	if err := decodeJSON(payload, &decoded); err != nil {
		return nil, err
	}

	id := idFromPayload(decoded)
	if id == "" {
		return nil, fmt.Errorf("%w: no instance id in %s", domain.ErrMalformedResponse, truncateForError(payload))
	}

	return &Instance{id: id, baseURL: p.baseURL, client: p.client}, nil
}

// Instance is one acquired opencode instance bound to a project directory.
type Instance struct {
	id      string
	baseURL string
	client  *http.Client
}

var _ ports.SessionInstance = (*Instance)(nil)

func (i *Instance) CreateSession(ctx context.Context, title string) (string, error) {
	url := fmt.Sprintf("%s/instances/%s/sessions", i.baseURL, i.id)

	payload, err := doJSON(ctx, i.client, http.MethodPost, url, createSessionRequest{Title: title})
	if err != nil {
		return "", err
	}

	var decoded map[string]any
	if err := decodeJSON(payload, &decoded); err != nil {
		return "", err
	}

	id := idFromPayload(decoded)
	if id == "" {
		return "", fmt.Errorf("%w: no session id in %s", domain.ErrMalformedResponse, truncateForError(payload))
	}

	return id, nil
}

func (i *Instance) Prompt(ctx context.Context, sessionID string, model domain.ModelSpec, agent, text string) error {
	url := fmt.Sprintf("%s/instances/%s/sessions/%s/messages", i.baseURL, i.id, sessionID)
	body := promptRequest{
		Model: modelRef{ProviderID: model.Provider, ModelID: model.Model},
		Agent: agent,
		Parts: []partPayload{{Type: domain.PartText, Text: text}},
	}

	_, err := doJSON(ctx, i.client, http.MethodPost, url, body)

	return err
}

func (i *Instance) RunCommand(ctx context.Context, sessionID string, invocation domain.CommandInvocation) (domain.CommandResult, error) {
	url := fmt.Sprintf("%s/instances/%s/sessions/%s/commands", i.baseURL, i.id, sessionID)
	body := commandRequest{
		Command:   invocation.Name,
		Arguments: invocation.Arguments,
		Agent:     invocation.Agent,
		Model:     modelRef{ProviderID: invocation.Model.Provider, ModelID: invocation.Model.Model},
	}

	payload, err := doJSON(ctx, i.client, http.MethodPost, url, body)
	if err != nil {
		return domain.CommandResult{}, err
	}

	var decoded messagePayload
	if err := decodeJSON(payload, &decoded); err != nil {
		return domain.CommandResult{}, err
	}

	return domain.CommandResult{
		Parts:     partsToDomain(decoded.Parts),
		MessageID: decoded.messageID(),
	}, nil
}

func (i *Instance) Message(ctx context.Context, sessionID, messageID string) (domain.Message, error) {
	url := fmt.Sprintf("%s/instances/%s/sessions/%s/messages/%s", i.baseURL, i.id, sessionID, messageID)

	payload, err := doJSON(ctx, i.client, http.MethodGet, url, nil)
	if err != nil {
		return domain.Message{}, err
	}

	var decoded messagePayload
	if err := decodeJSON(payload, &decoded); err != nil {
		return domain.Message{}, err
	}

	return domain.Message{ID: decoded.messageID(), Parts: partsToDomain(decoded.Parts)}, nil
}

func (i *Instance) SessionStates(ctx context.Context) (map[string]domain.SessionState, error) {
	url := fmt.Sprintf("%s/instances/%s/status", i.baseURL, i.id)

	payload, err := doJSON(ctx, i.client, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var decoded statusPayload
	if err := decodeJSON(payload, &decoded); err != nil {
		return nil, err
	}

	states := make(map[string]domain.SessionState, len(decoded.Sessions))
	for id, state := range decoded.Sessions {
		states[id] = domain.SessionState(state)
	}

	return states, nil
}

func (i *Instance) Dispose(ctx context.Context) error {
	url := fmt.Sprintf("%s/instances/%s", i.baseURL, i.id)

	_, err := doJSON(ctx, i.client, http.MethodDelete, url, nil)

	return err
}

func doJSON(ctx context.Context, client *http.Client, method, url string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProvider, err)
	}
	defer response.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(response.Body, responseBodyLimit))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s %s: status %d: %s", domain.ErrProvider, method, request.URL.Path, response.StatusCode, truncateForError(payload))
	}

	return payload, nil
}

func decodeJSON(payload []byte, target any) error {
	if err := json.Unmarshal(payload, target); err != nil {
		return fmt.Errorf("%w: %v: %s", domain.ErrMalformedResponse, err, truncateForError(payload))
	}

	return nil
}

// truncateForError keeps provider payloads readable in single-line
// diagnostics.
func truncateForError(payload []byte) string {
	const max = 512

	text := strings.TrimSpace(string(payload))
	if len(text) > max {
		return text[:max] + "..."
	}
	if text == "" {
		return "<empty body>"
	}

	return text
}
