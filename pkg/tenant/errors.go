// Copyright 2026 lnrlnrleite
// SPDX-License-Identifier: AGPL-3.0

package tenant

import "errors"

// ErrMissingCredential marks a tenant that has no stored value for a
// credential an operation needs. It is distinct from a decode failure: the
// secret was never configured, not configured and unreadable.
var ErrMissingCredential = errors.New("credential not configured")
