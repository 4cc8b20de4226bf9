// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName        = errors.New("name is required")
	ErrInvalidFormat    = errors.New("format must be round_robin or elimination")
	ErrInvalidType      = errors.New("type must be single or double")
	ErrInvalidDateRange = errors.New("end date must be after start date")
	ErrInvalidEmail     = errors.New("a valid email is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrInvalidRanking   = errors.New("ranking must be positive")
	ErrNegativeScore    = errors.New("scores cannot be negative")
	ErrInvalidWinner    = errors.New("selected winner is not part of this match")
	ErrWinnerMismatch   = errors.New("winner must have the higher score")
	ErrEmptyID          = errors.New("id is required")
)
