// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

type validationIssue struct {
	Msg string `json:"msg"`
}

// mapHTTPError returns nil for 2xx responses and an [*APIError] otherwise.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &APIError{
		StatusCode: resp.StatusCode(),
		Detail:     errorDetail(resp.StatusCode(), resp.Body()),
	}
}

// errorDetail extracts the user facing message of an error body.
//
//   - body is not JSON: [NetworkErrorMessage];
//   - "detail" is a non-empty string: that string;
//   - "detail" is a list of {msg}: the messages joined with "; ";
//   - otherwise: "HTTP <status>".
func errorDetail(status int, body []byte) string {
	fallback := fmt.Sprintf("HTTP %d", status)

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return NetworkErrorMessage
	}

	raw := bytes.TrimSpace(eb.Detail)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return fallback
	}

	var detail string
	if err := json.Unmarshal(raw, &detail); err == nil {
		if detail == "" {
			return fallback
		}
		return detail
	}

	var issues []validationIssue
	if err := json.Unmarshal(raw, &issues); err == nil {
		msgs := make([]string, 0, len(issues))
		for _, issue := range issues {
			if issue.Msg != "" {
				msgs = append(msgs, issue.Msg)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, "; ")
		}
		return fallback
	}

	return string(raw)
}
