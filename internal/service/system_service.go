package service

import (
	"database/sql"

	"github.com/iagocanalejas/richjet/internal/database"
	"github.com/iagocanalejas/richjet/internal/version"
)

// SystemService answers health and version probes.
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService over the live database handle.
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{db: db}
}

// CheckHealth verifies database connectivity.
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// CheckVersion reports the build version stamped at link time.
func (s *SystemService) CheckVersion() string {
	return version.Version
}
