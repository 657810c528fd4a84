// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

// Package checktica is a client for the Checktica API, which classifies
// whether a piece of text was generated by a language model.
//
// The quickest way in is the package-level Detect function:
//
//	res, err := checktica.Detect(ctx, essay, checktica.Balanced)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if res.IsLLMGenerated && res.Confidence > 0.65 {
//		fmt.Println("needs a second look")
//	}
//
// Use New with options to point at another host, change the timeout, or
// plug in your own *http.Client and *slog.Logger.
//
// # Errors
//
// Every failure is a *checktica.Error. Match one kind with errors.Is:
//
//	if errors.Is(err, checktica.ErrLimitExceeded) {
//		// back off; the call was not retried
//	}
//
// Connection failures, timeouts and malformed responses are retried up to
// three times with exponential backoff. Rate-limit responses are never
// retried.
package checktica

import (
	"context"
	"sync"
)

var (
	defaultOnce   sync.Once
	defaultClient *Client
	defaultErr    error
)

// Default returns the shared client used by the package-level Detect. It is
// built on first use with default options; CHECKTICA_API_URL is honoured.
func Default() (*Client, error) {
	defaultOnce.Do(func() {
		defaultClient, defaultErr = New()
	})
	return defaultClient, defaultErr
}

// Detect classifies text with the shared default client. Pass DefaultMethod
// when you have no preference.
func Detect(ctx context.Context, text string, method Method) (*Result, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.Detect(ctx, text, method)
}
