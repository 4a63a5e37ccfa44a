package controllers

import (
	"context"

	"github.com/Govind-619/SkillSphere/config"
	"github.com/Govind-619/SkillSphere/services"
)

// CreateSampleAdmin seeds the configured admin account if it does not exist yet
func CreateSampleAdmin(ctx context.Context, cfg *config.Config) error {
	_, err := services.EnsureAdmin(ctx, config.DB, cfg.AdminEmail, cfg.AdminPassword)
	return err
}
