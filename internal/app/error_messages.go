// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the "detail" messages the tournament API sends with
// error responses.
//
// The client shows these texts verbatim. They live in one place so the fake
// API in internal/apitest and the tests asserting on them use the same
// wording as the real server.
package app

const (
	// MsgNotAuthenticated is sent when a protected endpoint gets no bearer
	// token.
	MsgNotAuthenticated = "Not authenticated"

	// MsgInvalidCredentials is sent when a bearer token is malformed,
	// expired or revoked.
	MsgInvalidCredentials = "Could not validate credentials"

	// MsgInactiveUser is sent for a valid token of a deactivated account.
	MsgInactiveUser = "Inactive user"

	// MsgIncorrectLogin is sent by POST /token for an unknown email or a
	// wrong password.
	MsgIncorrectLogin = "Incorrect email or password"

	// MsgEmailRegistered is sent by POST /users/register for a duplicate
	// email.
	MsgEmailRegistered = "Email already registered. Please try logging in or use a different email."

	MsgInvalidForm = "Invalid form body"
	MsgInvalidJSON = "Invalid JSON body"

	MsgTournamentNotFound  = "Tournament not found"
	MsgInviteNotFound      = "Tournament not found or invalid invite code."
	MsgNotTournamentOwner  = "Not authorized to modify this tournament"
	MsgRegistrationClosed  = "Registration for this tournament is closed."
	MsgDuplicateEmail      = "Participant with this email already exists in the tournament"
	MsgAlreadyParticipant  = "You are already a participant in this tournament"
	MsgRemoveAfterStart    = "Cannot remove participants after the tournament has started."
	MsgParticipantNotFound = "Participant not found in this tournament"
	MsgRemoveCreator       = "The tournament creator cannot be removed from the participants list."

	MsgNotEnoughParticipants = "Not enough participants to generate matches."
	MsgOnlyRoundRobin        = "Only round_robin format is supported."
	MsgMatchesGenerated      = "Matches have already been generated."
	MsgByeMatch              = "Cannot record result for a bye match"
	MsgNotMatchPlayer        = "You are not authorized to record results for this match."
	MsgWinnerNotInMatch      = "Winner must be one of the match participants"
	MsgPlayoffsGenerated     = "Playoffs already generated"
	MsgGroupStageOpen        = "All group stage matches must be completed first"
	MsgMatchNotFound         = "Match not found in this tournament"
)
