// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

package checktica

import (
	"encoding/json"
	"net/http"
	"strings"
)

const unknownAPIErrorMessage = "Unknown API error has occurred. Please, try again later."

// detectionResponse mirrors the success body. Pointers distinguish a missing
// field from its zero value.
type detectionResponse struct {
	IsLLMGenerated *bool    `json:"is_llm_generated"`
	Remarks        *string  `json:"remarks"`
	Confidence     *float64 `json:"confidence"`
}

type limitResponse struct {
	Detail string `json:"detail"`
}

// mapResponse classifies a completed HTTP exchange.
func (c *Client) mapResponse(resp *rawResponse) (*Result, error) {
	switch resp.StatusCode {
	case http.StatusOK:
		res, err := decodeResult(resp.Body)
		if err != nil {
			err.StatusCode = resp.StatusCode
			return nil, err
		}
		return res, nil
	case http.StatusTooManyRequests:
		return nil, &Error{
			Kind:       KindLimitExceeded,
			Message:    limitDetail(resp.Body, c.limitMessage),
			StatusCode: resp.StatusCode,
		}
	default:
		return nil, &Error{
			Kind:       KindInvalidResponse,
			Message:    unknownAPIErrorMessage,
			StatusCode: resp.StatusCode,
		}
	}
}

// limitDetail extracts the optional detail message from a 429 body.
func limitDetail(body []byte, fallback string) string {
	var lr limitResponse
	if err := json.Unmarshal(body, &lr); err != nil || lr.Detail == "" {
		return fallback
	}
	return lr.Detail
}

// decodeResult parses a 200 body. Every field is required.
func decodeResult(body []byte) (*Result, *Error) {
	var dr detectionResponse
	if err := json.Unmarshal(body, &dr); err != nil {
		return nil, newError(KindInvalidResponse, "malformed response body", err)
	}

	var missing []string
	if dr.IsLLMGenerated == nil {
		missing = append(missing, "is_llm_generated")
	}
	if dr.Remarks == nil {
		missing = append(missing, "remarks")
	}
	if dr.Confidence == nil {
		missing = append(missing, "confidence")
	}
	if len(missing) > 0 {
		return nil, newError(KindInvalidResponse, "response is missing required fields: "+strings.Join(missing, ", "), nil)
	}

	if err := checkConfidence(*dr.Confidence); err != nil {
		return nil, newError(KindInvalidResponse, "response violates the result contract", err)
	}
	return &Result{
		IsLLMGenerated: *dr.IsLLMGenerated,
		Confidence:     *dr.Confidence,
		Remarks:        *dr.Remarks,
	}, nil
}
