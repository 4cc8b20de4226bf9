// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/match-point/models"
)

// Field names accepted by Validate to restrict which rules run.
const (
	FieldName     = "name"
	FieldFormat   = "format"
	FieldType     = "type"
	FieldDates    = "dates"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldRanking  = "ranking"
	FieldScores   = "scores"
	FieldWinner   = "winner"
	FieldMatchID  = "match_id"
)

var (
	allowedFormats = []models.TournamentFormat{models.FormatRoundRobin, models.FormatElimination}
	allowedTypes   = []models.TournamentType{models.TypeSingle, models.TypeDouble}
)

// MatchResultInput pairs a result with the match it is recorded for, so the
// winner can be checked against the match's participants.
type MatchResultInput struct {
	Match  models.Match
	Result models.MatchResult
}

// Credentials is a login attempt.
type Credentials struct {
	Email    string
	Password string
}

// TournamentValidator validates tournament, participant, result and
// credential input. The first failing rule is returned.
type TournamentValidator struct{}

func NewTournamentValidator() Validator {
	return &TournamentValidator{}
}

// Validate dispatches on the dynamic type of obj. Values and pointers of
// models.TournamentCreate, models.ParticipantCreate, models.UserCreate,
// MatchResultInput and Credentials are supported.
func (v *TournamentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TournamentCreate:
		return v.validateTournament(value, fields...)
	case *models.TournamentCreate:
		return v.validateTournament(*value, fields...)

	case models.ParticipantCreate:
		return v.validateParticipant(value, fields...)
	case *models.ParticipantCreate:
		return v.validateParticipant(*value, fields...)

	case MatchResultInput:
		return v.validateResult(value, fields...)
	case *MatchResultInput:
		return v.validateResult(*value, fields...)

	case models.UserCreate:
		return v.validateUserCreate(value, fields...)
	case *models.UserCreate:
		return v.validateUserCreate(*value, fields...)

	case Credentials:
		return v.validateCredentials(value, fields...)
	case *Credentials:
		return v.validateCredentials(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *TournamentValidator) validateTournament(t models.TournamentCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldFormat, FieldType, FieldDates}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(t.Name) == "" {
				return ErrEmptyName
			}
		case FieldFormat:
			if !contains(allowedFormats, t.Format) {
				return ErrInvalidFormat
			}
		case FieldType:
			if !contains(allowedTypes, t.Type) {
				return ErrInvalidType
			}
		case FieldDates:
			if t.StartDate != nil && t.EndDate != nil && !t.EndDate.After(*t.StartDate) {
				return ErrInvalidDateRange
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TournamentValidator) validateParticipant(p models.ParticipantCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldRanking}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(p.Name) == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if !validEmail(p.Email) {
				return ErrInvalidEmail
			}
		case FieldRanking:
			if p.Ranking != nil && *p.Ranking <= 0 {
				return ErrInvalidRanking
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateResult checks scores and winner. An empty winner is allowed: the
// server derives it from the scores.
func (v *TournamentValidator) validateResult(in MatchResultInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMatchID, FieldScores, FieldWinner}
	}

	r := in.Result
	for _, f := range fields {
		switch f {
		case FieldMatchID:
			if in.Match.ID == "" {
				return ErrEmptyID
			}
		case FieldScores:
			if r.Participant1Score < 0 || r.Participant2Score < 0 {
				return ErrNegativeScore
			}
		case FieldWinner:
			if r.WinnerID == "" {
				continue
			}
			if !in.Match.HasParticipant(r.WinnerID) {
				return ErrInvalidWinner
			}
			if r.Participant1Score == r.Participant2Score {
				continue
			}
			leader := in.Match.Participant1ID
			if r.Participant2Score > r.Participant1Score {
				leader = in.Match.Participant2ID
			}
			if leader == nil || *leader != r.WinnerID {
				return ErrWinnerMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TournamentValidator) validateUserCreate(u models.UserCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(u.Name) == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if !validEmail(u.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if u.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TournamentValidator) validateCredentials(c Credentials, fields ...string) error {
	return v.validateUserCreate(models.UserCreate{Email: c.Email, Password: c.Password}, fields...)
}

// validEmail accepts a bare address, not a "Name <addr>" form.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func contains[T comparable](list []T, v T) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
