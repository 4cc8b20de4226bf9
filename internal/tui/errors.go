// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/match-point/internal/adapter"
	"github.com/MKhiriev/match-point/internal/service"
	"github.com/MKhiriev/match-point/internal/session"
)

// errorText is the inline message for err: the server's detail for API
// errors, the fixed network message for transport failures and the rule for
// rejected input. Operation prefixes added on the way up are not shown.
func errorText(err error) string {
	if err == nil {
		return ""
	}

	var (
		authErr *session.AuthError
		regErr  *session.RegistrationError
		valErr  *service.ValidationError
		apiErr  *adapter.APIError
		netErr  *adapter.NetworkError
	)
	switch {
	case errors.As(err, &authErr):
		return authErr.Message
	case errors.As(err, &regErr):
		return regErr.Message
	case errors.As(err, &valErr):
		return valErr.Error()
	case errors.As(err, &netErr):
		return netErr.Error()
	case errors.As(err, &apiErr):
		return apiErr.Error()
	default:
		return err.Error()
	}
}
