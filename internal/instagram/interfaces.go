// Copyright 2026 lnrlnrleite
// SPDX-License-Identifier: AGPL-3.0

package instagram

import (
	"context"
)

type ClientInterface interface {
	CreateMediaContainer(ctx context.Context, businessID, accessToken, imageURL, caption string) (string, error)
	PublishMediaContainer(ctx context.Context, businessID, accessToken, creationID string) (string, error)
}
