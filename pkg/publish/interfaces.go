// Copyright 2026 lnrlnrleite
// SPDX-License-Identifier: AGPL-3.0

package publish

import (
	"context"

	"github.com/lnrlnrleite/social/pkg/tenant"
)

// TenantServiceInterface defines the tenant operations required by the publish
// package. It is a subset of the pkg/tenant service.
type TenantServiceInterface interface {
	ResolvePublicationCredentials(ctx context.Context, id string) (*tenant.PublicationCredentials, error)
}

// InstagramClientInterface defines the Graph API operations required by the
// publish package. It is satisfied by internal/instagram.Client.
type InstagramClientInterface interface {
	CreateMediaContainer(ctx context.Context, businessID, accessToken, imageURL, caption string) (string, error)
	PublishMediaContainer(ctx context.Context, businessID, accessToken, creationID string) (string, error)
}

// ServiceInterface defines the publication operations.
type ServiceInterface interface {
	PublishPost(ctx context.Context, tenantID, imageURL, caption string) (*PublicationResult, error)
	PublishExisting(ctx context.Context, tenantID, creationID string) (*PublicationResult, error)
}
