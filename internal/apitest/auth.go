// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apitest

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/match-point/internal/app"
	"github.com/MKhiriev/match-point/internal/utils"
	"github.com/MKhiriev/match-point/models"
)

type ctxKey struct{}

func currentUser(ctx context.Context) models.User {
	u, _ := ctx.Value(ctxKey{}).(models.User)
	return u
}

func (s *Server) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			utils.WriteDetail(w, app.MsgNotAuthenticated, http.StatusUnauthorized)
			return
		}

		email, err := utils.ValidateJWTToken(token, s.signKey, tokenIssuer)

		s.mu.Lock()
		acc, known := s.accounts[email]
		revoked := s.revoked[token]
		s.mu.Unlock()

		if err != nil || !known || revoked {
			utils.WriteDetail(w, app.MsgInvalidCredentials, http.StatusUnauthorized)
			return
		}
		if !acc.user.IsActive {
			utils.WriteDetail(w, app.MsgInactiveUser, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, acc.user)))
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.WriteDetail(w, app.MsgInvalidForm, http.StatusBadRequest)
		return
	}
	email := strings.TrimSpace(r.PostForm.Get("username"))
	password := r.PostForm.Get("password")

	s.mu.Lock()
	acc, ok := s.accounts[email]
	s.mu.Unlock()

	if !ok || acc.password != password {
		utils.WriteDetail(w, app.MsgIncorrectLogin, http.StatusUnauthorized)
		return
	}

	_, _ = utils.WriteJSON(w, models.Token{
		AccessToken: s.IssueToken(email, tokenTTL),
		TokenType:   "bearer",
	}, http.StatusOK)
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var in models.UserCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteDetail(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	var issues []map[string]string
	if !strings.Contains(in.Email, "@") {
		issues = append(issues, map[string]string{"msg": "value is not a valid email address"})
	}
	if in.Password == "" {
		issues = append(issues, map[string]string{"msg": "password must not be empty"})
	}
	if len(issues) > 0 {
		_, _ = utils.WriteJSON(w, map[string]any{"detail": issues}, http.StatusUnprocessableEntity)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[in.Email]; exists {
		utils.WriteDetail(w, app.MsgEmailRegistered, http.StatusBadRequest)
		return
	}

	_, _ = utils.WriteJSON(w, s.addUserLocked(in.Email, in.Password, in.Name), http.StatusCreated)
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, currentUser(r.Context()), http.StatusOK)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	token, _ := utils.ParseBearerToken(r.Header.Get("Authorization"))

	s.mu.Lock()
	s.revoked[token] = true
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, map[string]string{"message": "Successfully logged out"}, http.StatusOK)
}
