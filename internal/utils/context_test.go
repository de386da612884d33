// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallerContext(t *testing.T) {
	_, ok := GetCallerFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithCaller(context.Background(), "launcher-ui")
	caller, ok := GetCallerFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "launcher-ui", caller)

	wrongType := context.WithValue(context.Background(), CallerCtxKey, 42)
	_, ok = GetCallerFromContext(wrongType)
	assert.False(t, ok)
}

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "caller", CallerCtxKey.String())
}

func TestUUIDGenerator_Unique(t *testing.T) {
	g := NewUUIDGenerator()
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := g.Generate()
		assert.Len(t, id, 36)
		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
	}
}
