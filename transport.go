// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

package checktica

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"

	"github.com/google/uuid"
)

const maxResponseBytes = 1 << 20 // 1 MiB

// rawResponse is what a single POST produced before classification.
type rawResponse struct {
	StatusCode int
	Body       []byte
}

// post sends one detection request. Any failure to obtain a complete
// response is reported as KindAPIAccess.
func (c *Client) post(ctx context.Context, body []byte, requestID string) (*rawResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, newError(KindAPIAccess, "creating request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newError(KindAPIAccess, accessMessage(err), err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &Error{
			Kind:       KindAPIAccess,
			Message:    "reading response body",
			StatusCode: resp.StatusCode,
			Err:        err,
		}
	}

	return &rawResponse{StatusCode: resp.StatusCode, Body: data}, nil
}

func accessMessage(err error) string {
	if isTimeout(err) {
		return "request to the Checktica API timed out"
	}
	return "could not connect to the Checktica API"
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func newRequestID() string {
	return uuid.NewString()
}
