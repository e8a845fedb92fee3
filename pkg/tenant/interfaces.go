// Copyright 2026 lnrlnrleite
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"

	"github.com/lnrlnrleite/social/internal/types"
)

// StorageInterface defines the storage operations required by the tenant package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	CreateTenant(ctx context.Context, params *types.TenantParams) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, id string, t *types.Tenant, paths []string) (*types.Tenant, error)
}

// CodecInterface defines the secret codec operations required by the tenant
// package. It is satisfied by internal/secrets.Codec.
type CodecInterface interface {
	Encrypt(plaintext *string) (*string, error)
	Decrypt(record *string) (*string, error)
}

// ServiceInterface defines the tenant service operations.
type ServiceInterface interface {
	CreateTenant(ctx context.Context, params *types.TenantParams) (*TenantView, error)
	GetTenant(ctx context.Context, id string) (*TenantView, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	UpdateSettings(ctx context.Context, id string, params *types.TenantParams) (*TenantView, error)
	ResolveGenerationCredentials(ctx context.Context, id string) (*GenerationCredentials, error)
	ResolvePublicationCredentials(ctx context.Context, id string) (*PublicationCredentials, error)
}
