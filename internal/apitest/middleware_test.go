// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apitest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/match-point/internal/app"
	"github.com/MKhiriev/match-point/internal/logger"
	"github.com/MKhiriev/match-point/internal/utils"
)

func TestWithRequestID(t *testing.T) {
	tests := []struct {
		name      string
		requestID string
	}{
		{name: "caller id is echoed", requestID: "req-42"},
		{name: "missing id is generated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			req := httptest.NewRequest(http.MethodGet, "/tournaments/missing", nil)
			if tt.requestID != "" {
				req.Header.Set(utils.RequestIDHeader, tt.requestID)
			}
			rr := httptest.NewRecorder()

			s.Handler().ServeHTTP(rr, req)

			got := rr.Header().Get(utils.RequestIDHeader)
			if tt.requestID != "" {
				assert.Equal(t, tt.requestID, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	s := New()
	s.SetLogger(logger.NewLogger("apitest", &buf))

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set(utils.RequestIDHeader, "req-7")
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), app.MsgNotAuthenticated)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/users/me", entry["uri"])
	assert.EqualValues(t, http.StatusUnauthorized, entry["status"])
	assert.Equal(t, "req-7", entry["request_id"])
	assert.Positive(t, entry["size"])
}
