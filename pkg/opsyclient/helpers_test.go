// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package opsyclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"
)

const (
	testBaseURL = "http://localhost/"
	testSpecURL = "http://localhost/docs/swagger.json"
	testAPIURL  = "http://localhost/api/v1"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

// newMockTransport returns a transport serving the swagger fixture and an
// http.Client bound to it.
func newMockTransport(t *testing.T) (*httpmock.MockTransport, *http.Client) {
	t.Helper()
	mock := httpmock.NewMockTransport()
	mock.RegisterResponder(http.MethodGet, testSpecURL,
		httpmock.NewBytesResponder(http.StatusOK, readFixture(t, "swagger.json")))
	return mock, &http.Client{Transport: mock}
}

func newTestClient(t *testing.T, opts ...Option) (*Client, *httpmock.MockTransport) {
	t.Helper()
	mock, hc := newMockTransport(t)
	c, err := New(context.Background(), testBaseURL, append([]Option{WithHTTPClient(hc)}, opts...)...)
	require.NoError(t, err)
	return c, mock
}

// registerLogin serves a successful create_login and a show_login that
// requires the fixture token.
func registerLogin(t *testing.T, mock *httpmock.MockTransport, wantForceRenew bool) {
	t.Helper()
	fixture := readFixture(t, "login_success.json")
	var login map[string]any
	require.NoError(t, json.Unmarshal(fixture, &login))

	mock.RegisterResponder(http.MethodPost, testAPIURL+"/login/", func(req *http.Request) (*http.Response, error) {
		body := decodeRequestBody(t, req)
		if body["user_name"] != "admin" || body["password"] != "password" {
			return httpmock.NewStringResponse(http.StatusUnauthorized, `{"message": "Username or password incorrect."}`), nil
		}
		require.Equal(t, wantForceRenew, body["force_renew"])
		return httpmock.NewBytesResponse(http.StatusOK, fixture), nil
	})
	mock.RegisterResponder(http.MethodGet, testAPIURL+"/login/", func(req *http.Request) (*http.Response, error) {
		if req.Header.Get(TokenHeader) != login["token"] {
			return httpmock.NewStringResponse(http.StatusForbidden, `{"message": "Permission denied."}`), nil
		}
		return httpmock.NewBytesResponse(http.StatusOK, fixture), nil
	})
}

func decodeRequestBody(t *testing.T, req *http.Request) map[string]any {
	t.Helper()
	data, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(data, &body))
	return body
}

func ptr[T any](v T) *T { return &v }
