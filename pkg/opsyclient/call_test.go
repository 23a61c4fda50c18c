// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package opsyclient

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallValidationFailsBeforeRequest(t *testing.T) {
	tests := []struct {
		name      string
		resource  string
		operation string
		params    Params
		wantField string
	}{
		{
			name:      "unknown operation",
			resource:  "zones",
			operation: "rename_zone",
			wantField: "operation",
		},
		{
			name:      "operation under the wrong resource",
			resource:  "groups",
			operation: OpShowZone,
			wantField: "operation",
		},
		{
			name:      "missing path parameter",
			resource:  "zones",
			operation: OpShowZone,
			wantField: "id_or_name",
		},
		{
			name:      "missing nested path parameter",
			resource:  "hosts",
			operation: OpShowHostGroupMapping,
			params:    Params{Path: map[string]string{"id_or_name": "web01"}},
			wantField: "group_id_or_name",
		},
		{
			name:      "unknown filter",
			resource:  "zones",
			operation: OpListZones,
			params:    Params{Query: map[string]any{"color": "blue"}},
			wantField: "color",
		},
		{
			name:      "missing required body",
			resource:  "zones",
			operation: OpCreateZone,
			wantField: "body",
		},
		{
			name:      "body violates schema",
			resource:  "zones",
			operation: OpCreateZone,
			params:    Params{Body: map[string]any{"name": ""}},
			wantField: "name",
		},
		{
			name:      "body has undeclared property",
			resource:  "hosts",
			operation: OpCreateHost,
			params: Params{Body: map[string]any{
				"name":    "web01",
				"zone_id": "7d2c4c3e-6d54-4d8b-9b53-0f7b3b7bd3a1",
				"rack":    "r12",
			}},
			wantField: "body",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, mock := newTestClient(t)

			_, err := c.Call(context.Background(), tc.resource, tc.operation, tc.params)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			if tc.wantField != "body" {
				assert.Equal(t, tc.wantField, verr.Field)
			}
			assert.Equal(t, 1, mock.GetTotalCallCount(), "only the swagger document should have been fetched")
		})
	}
}

func TestCallDropsUnsetValues(t *testing.T) {
	c, mock := newTestClient(t, WithRawResults())

	var rawQuery string
	mock.RegisterResponder(http.MethodGet, testAPIURL+"/groups/", func(req *http.Request) (*http.Response, error) {
		rawQuery = req.URL.RawQuery
		return httpmock.NewStringResponse(http.StatusOK, `[]`), nil
	})
	var body map[string]any
	mock.RegisterResponder(http.MethodPost, testAPIURL+"/groups/", func(req *http.Request) (*http.Response, error) {
		body = decodeRequestBody(t, req)
		return httpmock.NewStringResponse(http.StatusCreated, `{"name": "web"}`), nil
	})

	_, err := c.Call(context.Background(), "groups", OpListGroups, Params{Query: map[string]any{
		"name":             "web",
		"zone":             nil,
		"default_priority": 10,
	}})
	require.NoError(t, err)
	assert.Equal(t, "default_priority=10&name=web", rawQuery)

	_, err = c.Call(context.Background(), "groups", OpCreateGroup, Params{Body: map[string]any{
		"name":    "web",
		"zone_id": nil,
		"vars":    map[string]any{"role": "web"},
	}})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "web", "vars": map[string]any{"role": "web"}}, body)
}

func TestCallTypedNilQueryIsUnset(t *testing.T) {
	c, mock := newTestClient(t, WithRawResults())

	var rawQuery string
	mock.RegisterResponder(http.MethodGet, testAPIURL+"/zones/", func(req *http.Request) (*http.Response, error) {
		rawQuery = req.URL.RawQuery
		return httpmock.NewStringResponse(http.StatusOK, `[]`), nil
	})

	_, err := c.Call(context.Background(), "zones", OpListZones, Params{Query: map[string]any{"name": (*string)(nil)}})
	require.NoError(t, err)
	assert.Empty(t, rawQuery)

	_, err = c.Call(context.Background(), "zones", OpListZones, Params{Query: map[string]any{"name": ptr("west")}})
	require.NoError(t, err)
	assert.Equal(t, "name=west", rawQuery)
}

func TestCallEscapesPathParameters(t *testing.T) {
	c, mock := newTestClient(t)

	var path string
	mock.RegisterNoResponder(func(req *http.Request) (*http.Response, error) {
		path = req.URL.EscapedPath()
		return httpmock.NewStringResponse(http.StatusOK, `{"name": "a b"}`), nil
	})

	resp, err := c.Zones().Show(context.Background(), "a b/c")
	require.NoError(t, err)
	assert.Equal(t, "a b", resp.Result.Name)
	assert.Equal(t, "/api/v1/zones/a%20b%2Fc", path)
}

func TestCallTransportError(t *testing.T) {
	tests := []struct {
		name       string
		responder  httpmock.Responder
		wantCode   int
		wantReason string
	}{
		{
			name:       "json message",
			responder:  httpmock.NewStringResponder(http.StatusNotFound, `{"code": 404, "status": "Not Found", "message": "Zone not found."}`),
			wantCode:   http.StatusNotFound,
			wantReason: "Zone not found.",
		},
		{
			name:       "json error field",
			responder:  httpmock.NewStringResponder(http.StatusConflict, `{"error": "Zone already exists."}`),
			wantCode:   http.StatusConflict,
			wantReason: "Zone already exists.",
		},
		{
			name:       "plain body",
			responder:  httpmock.NewStringResponder(http.StatusInternalServerError, "boom"),
			wantCode:   http.StatusInternalServerError,
			wantReason: "Internal Server Error",
		},
		{
			name:       "network failure",
			responder:  httpmock.NewErrorResponder(errors.New("connection reset")),
			wantCode:   0,
			wantReason: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, mock := newTestClient(t)
			mock.RegisterResponder(http.MethodGet, testAPIURL+"/zones/west", tc.responder)

			_, err := c.Zones().Show(context.Background(), "west")
			var terr *TransportError
			require.ErrorAs(t, err, &terr)
			assert.Equal(t, tc.wantCode, terr.StatusCode)
			assert.Equal(t, tc.wantReason, terr.Reason)
			assert.Equal(t, http.MethodGet, terr.Method)
			assert.Equal(t, tc.wantCode == http.StatusNotFound, IsNotFound(err))
		})
	}
}
