package domain

import "errors"

var (
	ErrDocumentMissing   = errors.New("required document not found")
	ErrInvalidModelRef   = errors.New("invalid model reference")
	ErrProvider          = errors.New("provider request failed")
	ErrMalformedResponse = errors.New("malformed provider response")
	ErrSessionMissing    = errors.New("session missing from status report")
	ErrIdleTimeout       = errors.New("timed out waiting for idle session")
	ErrEmptyReviewOutput = errors.New("review produced no usable output")
	ErrNoReviewPayload   = errors.New("no findings payload in review output")
	ErrReviewLoopLimit   = errors.New("review loop iteration limit reached")
)
