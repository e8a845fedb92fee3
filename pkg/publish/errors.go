// Copyright 2026 lnrlnrleite
// SPDX-License-Identifier: AGPL-3.0

package publish

import (
	"errors"
	"fmt"
)

// ErrValidation marks caller-supplied arguments rejected before any network
// call is made.
var ErrValidation = errors.New("invalid publication arguments")

// PublishError marks a failed Graph API interaction. CreationID is set when a
// media container was already created before the failure, so the caller can
// retry the publish step against the existing container instead of creating
// a duplicate.
type PublishError struct {
	CreationID string
	Err        error
}

func (e *PublishError) Error() string {
	if e.CreationID != "" {
		return fmt.Sprintf("failed to publish media container %s: %v", e.CreationID, e.Err)
	}
	return fmt.Sprintf("failed to create media container: %v", e.Err)
}

func (e *PublishError) Unwrap() error {
	return e.Err
}
