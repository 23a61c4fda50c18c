// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package opsycli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	Name     string         `json:"name"`
	Priority int            `json:"priority"`
	Parent   *string        `json:"parent_id"`
	Vars     map[string]any `json:"vars,omitempty"`
}

func TestPrintTable(t *testing.T) {
	parent := "core"
	rows := []row{
		{Name: "web", Priority: 10, Parent: &parent, Vars: map[string]any{"tier": "front"}},
		{Name: "db", Priority: 0},
	}
	cols := []Column{
		{Header: "NAME", Field: "name"},
		{Header: "PRIORITY", Field: "priority"},
		{Header: "PARENT_ID", Field: "parent_id"},
		{Header: "VARS", Field: "vars"},
	}

	var buf bytes.Buffer
	require.NoError(t, PrintTable(&buf, cols, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"NAME", "PRIORITY", "PARENT_ID", "VARS"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"web", "10", "core", `{"tier":"front"}`}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"db", "0", "-", "-"}, strings.Fields(lines[2]))
}

func TestPrintTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintTable(&buf, []Column{{Header: "NAME", Field: "name"}}, []row{}))
	assert.Equal(t, "(no results)\n", buf.String())
}

func TestPrintDetail(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintDetail(&buf, row{Name: "web", Priority: 10, Vars: map[string]any{"ports": []int{80, 443}}}))

	out := buf.String()
	assert.Contains(t, out, "name: web\n")
	assert.Contains(t, out, "priority: 10\n")
	assert.Contains(t, out, "parent_id: null\n")
	assert.Contains(t, out, "vars:\n  ports:\n")
	assert.Contains(t, out, "- 80\n")
	assert.Contains(t, out, "- 443\n")
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintJSON(&buf, row{Name: "web"}))
	assert.Equal(t, "{\n  \"name\": \"web\",\n  \"priority\": 0,\n  \"parent_id\": null\n}\n", buf.String())
}
