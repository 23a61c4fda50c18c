// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package opsyclient

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	good := []string{"admin@example.com", "admin@example123.com", "admin+opsy@example.com", "first.last@sub-domain.example.org"}
	for _, addr := range good {
		assert.NoError(t, ValidateEmail(addr), addr)
	}

	bad := []string{"admin&&&@example.com", "admin@example___123.com", "admin", "admin@localhost", ""}
	for _, addr := range bad {
		assert.Error(t, ValidateEmail(addr), addr)
	}
}

func TestEmailFormatInSchemas(t *testing.T) {
	schema := openapi3.NewObjectSchema().WithProperty("email", openapi3.NewStringSchema().WithFormat("email"))

	assert.NoError(t, schema.VisitJSON(map[string]any{"email": "admin+opsy@example.com"}))
	assert.Error(t, schema.VisitJSON(map[string]any{"email": "admin&&&@example.com"}))
}
