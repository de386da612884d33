// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks boundary inputs before they reach the
// participant store or the visualizations folder.
//
// A Validator accepts a value and, optionally, the names of the fields to
// check. Without field names every field of the value is checked.
package validators

import "context"

// Validator validates an input value, optionally restricted to the named
// fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
