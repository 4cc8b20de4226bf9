// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"

	"github.com/MKhiriev/match-point/internal/config"
	"github.com/MKhiriev/match-point/internal/store"
	"github.com/MKhiriev/match-point/models"
)

type appInfoService struct {
	buildInfo  models.AppBuildInfo
	apiAddress string
	storage    string
}

func NewAppInfoService(buildInfo models.AppBuildInfo, cfg config.ClientConfig) AppInfoService {
	return &appInfoService{
		buildInfo:  buildInfo,
		apiAddress: cfg.Adapter.HTTPAddress,
		storage:    store.BackendName(strings.TrimSpace(cfg.Storage.DB.DSN)),
	}
}

func (s *appInfoService) BuildInfo() models.AppBuildInfo {
	return s.buildInfo
}

func (s *appInfoService) APIAddress() string {
	return s.apiAddress
}

// StorageBackend names where the session token is kept: sqlite, postgres,
// redis or memory.
func (s *appInfoService) StorageBackend() string {
	return s.storage
}
