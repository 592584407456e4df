package db

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"hrpay/internal/domain/auth"
	"hrpay/internal/domain/organization"
	"hrpay/internal/platform/config"
)

func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	tenantID, err := ensureTenant(ctx, pool, cfg.SeedTenantName)
	if err != nil {
		return err
	}

	if err := ensureAdminUser(ctx, pool, tenantID, cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
		return err
	}

	return ensureDefaultPolicy(ctx, pool, tenantID)
}

func ensureTenant(ctx context.Context, pool *pgxpool.Pool, name string) (string, error) {
	var id string
	err := pool.QueryRow(ctx, "SELECT id FROM tenants WHERE name = $1", name).Scan(&id)
	if err == nil {
		return id, nil
	}

	err = pool.QueryRow(ctx, "INSERT INTO tenants (name) VALUES ($1) RETURNING id", name).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func ensureAdminUser(ctx context.Context, pool *pgxpool.Pool, tenantID, email, password string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return nil
	}

	var id string
	err := pool.QueryRow(ctx, "SELECT id FROM users WHERE tenant_id = $1 AND email = $2", tenantID, email).Scan(&id)
	if err == nil {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	return pool.QueryRow(ctx, `
    INSERT INTO users (tenant_id, email, password_hash, role, status)
    VALUES ($1, $2, $3, $4, 'active')
    RETURNING id
  `, tenantID, email, hash, auth.RoleHR).Scan(&id)
}

func ensureDefaultPolicy(ctx context.Context, pool *pgxpool.Pool, tenantID string) error {
	var exists bool
	err := pool.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM organization_policies WHERE tenant_id = $1)", tenantID).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	payload, err := json.Marshal(organization.DefaultPolicy())
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
    INSERT INTO organization_policies (tenant_id, policy_json)
    VALUES ($1, $2)
  `, tenantID, payload)
	return err
}
