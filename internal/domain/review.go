package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ReviewResult is the decoded payload of one review command. The payload
// shape belongs to the review command; only the findings sequence is
// interpreted here, the rest rides along verbatim into the next fix prompt.
type ReviewResult struct {
	Findings []any

	payload map[string]any
}

// Empty reports convergence: a findings sequence with zero elements.
func (r ReviewResult) Empty() bool {
	return len(r.Findings) == 0
}

// Indent renders the full payload as indented JSON for embedding in a prompt.
func (r ReviewResult) Indent() (string, error) {
	data, err := json.MarshalIndent(r.payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode review payload: %w", err)
	}

	return string(data), nil
}

// FindingsOf validates that value is an object carrying a findings sequence
// and returns that sequence. A payload without findings is an error, never
// "no findings".
func FindingsOf(value any) ([]any, error) {
	object, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: payload is not an object", ErrNoReviewPayload)
	}

	raw, ok := object["findings"]
	if !ok {
		return nil, fmt.Errorf("%w: object has no findings key", ErrNoReviewPayload)
	}

	findings, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: findings is not a sequence", ErrNoReviewPayload)
	}

	return findings, nil
}

// ExtractReviewResult locates the JSON object a review command leaves after
// free-form commentary. Candidates are tried from the rightmost "{" to the
// leftmost; the first substring-to-end that parses as an object with a
// findings sequence wins. Best-effort: commentary that itself embeds a valid
// findings object can shadow the reviewer's final answer.
func ExtractReviewResult(output string) (ReviewResult, error) {
	if strings.TrimSpace(output) == "" {
		return ReviewResult{}, fmt.Errorf("%w: blank review output", ErrEmptyReviewOutput)
	}

	for at := strings.LastIndex(output, "{"); at >= 0; at = strings.LastIndex(output[:at], "{") {
		var payload map[string]any
		if err := json.Unmarshal([]byte(output[at:]), &payload); err != nil {
			continue
		}

		findings, err := FindingsOf(payload)
		if err != nil {
			continue
		}

		return ReviewResult{Findings: findings, payload: payload}, nil
	}

	return ReviewResult{}, fmt.Errorf("%w: no object suffix parsed", ErrNoReviewPayload)
}
