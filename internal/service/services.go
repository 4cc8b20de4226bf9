// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/match-point/internal/adapter"
	"github.com/MKhiriev/match-point/internal/config"
	"github.com/MKhiriev/match-point/internal/logger"
	"github.com/MKhiriev/match-point/models"
)

type Services struct {
	TournamentService TournamentService
	AppInfoService    AppInfoService
}

func NewServices(serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, cfg config.ClientConfig, logger *logger.Logger) *Services {
	tournaments := NewTournamentValidationService().Wrap(NewTournamentService(serverAdapter, logger))

	return &Services{
		TournamentService: tournaments,
		AppInfoService:    NewAppInfoService(buildInfo, cfg),
	}
}
