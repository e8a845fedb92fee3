// Copyright 2026 lnrlnrleite
// SPDX-License-Identifier: AGPL-3.0

package content

import "fmt"

// Pipeline stages, in execution order.
const (
	StageCaption      = "caption"
	StageVisualPrompt = "visual prompt"
	StageImage        = "image"
)

// GenerationError marks a pipeline run that failed at one of its three AI
// calls. The whole run fails with it; callers never see a partial result.
type GenerationError struct {
	Stage string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("content generation failed at the %s stage: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
