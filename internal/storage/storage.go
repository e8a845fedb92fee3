// Copyright 2026 lnrlnrleite
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/lnrlnrleite/social/internal/db"
	"github.com/lnrlnrleite/social/internal/logging"
	"github.com/lnrlnrleite/social/internal/monitoring"
	"github.com/lnrlnrleite/social/internal/tracing"
	"github.com/lnrlnrleite/social/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

var tenantColumns = []string{
	"id", "business_name", "niche", "business_description", "target_audience",
	"tone_of_voice", "main_products", "gemini_api_key", "instagram_access_token",
	"instagram_business_id", "created_at", "updated_at",
}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) CreateTenant(ctx context.Context, params *types.TenantParams) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
	}

	var t types.Tenant
	err = s.db.Statement(ctx).
		Insert("tenants").
		Columns(
			"id", "business_name", "niche", "business_description",
			"target_audience", "tone_of_voice", "main_products",
			"gemini_api_key", "instagram_access_token", "instagram_business_id",
		).
		Values(
			id.String(), params.BusinessName, params.Niche, params.BusinessDescription,
			params.TargetAudience, params.ToneOfVoice, params.MainProducts,
			params.GeminiAPIKey, params.InstagramAccessToken, params.InstagramBusinessID,
		).
		Suffix("RETURNING " + columnList()).
		QueryRowContext(ctx).
		Scan(tenantFields(&t)...)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert tenant: %w", err)
	}

	return &t, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	var t types.Tenant
	err := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(tenantFields(&t)...)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return &t, nil
}

func (s *Storage) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenants")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*types.Tenant
	for rows.Next() {
		var t types.Tenant
		if err := rows.Scan(tenantFields(&t)...); err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tenant rows: %w", err)
	}

	return tenants, nil
}

// UpdateTenant updates the columns named in paths from the corresponding
// fields of t, field-mask style. A nil pointer field named in
// paths clears the column to NULL; columns not named keep their stored
// value. updated_at is always refreshed.
func (s *Storage) UpdateTenant(ctx context.Context, id string, t *types.Tenant, paths []string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTenant")
	defer span.End()

	fields := map[string]*string{
		"business_name":          t.BusinessName,
		"niche":                  t.Niche,
		"business_description":   t.BusinessDescription,
		"target_audience":        t.TargetAudience,
		"tone_of_voice":          t.ToneOfVoice,
		"main_products":          t.MainProducts,
		"gemini_api_key":         t.GeminiAPIKey,
		"instagram_access_token": t.InstagramAccessToken,
		"instagram_business_id":  t.InstagramBusinessID,
	}

	updateMap := map[string]interface{}{
		"updated_at": sq.Expr("CURRENT_TIMESTAMP"),
	}
	for _, p := range paths {
		if value, ok := fields[p]; ok {
			updateMap[p] = value
		}
	}

	var updated types.Tenant
	err := s.db.Statement(ctx).
		Update("tenants").
		SetMap(updateMap).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + columnList()).
		QueryRowContext(ctx).
		Scan(tenantFields(&updated)...)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	return &updated, nil
}

// tenantFields returns scan destinations in tenantColumns order.
func tenantFields(t *types.Tenant) []interface{} {
	return []interface{}{
		&t.ID, &t.BusinessName, &t.Niche, &t.BusinessDescription, &t.TargetAudience,
		&t.ToneOfVoice, &t.MainProducts, &t.GeminiAPIKey, &t.InstagramAccessToken,
		&t.InstagramBusinessID, &t.CreatedAt, &t.UpdatedAt,
	}
}

func columnList() string {
	list := tenantColumns[0]
	for _, c := range tenantColumns[1:] {
		list += ", " + c
	}
	return list
}
