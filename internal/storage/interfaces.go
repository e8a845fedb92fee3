// Copyright 2026 lnrlnrleite
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/lnrlnrleite/social/internal/types"
)

type StorageInterface interface {
	CreateTenant(ctx context.Context, params *types.TenantParams) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, id string, t *types.Tenant, paths []string) (*types.Tenant, error)
}
