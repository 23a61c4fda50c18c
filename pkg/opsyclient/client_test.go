// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package opsyclient

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c, mock := newTestClient(t)

	assert.False(t, c.Authenticated())
	assert.Empty(t, c.Token())
	assert.Equal(t, []string{"groups", "hosts", "login", "zones"}, c.Resources())
	assert.Equal(t, "Opsy", c.Spec().Title)
	assert.Equal(t, "/api/v1", c.Spec().BasePath)
	assert.Equal(t, 1, mock.GetCallCountInfo()["GET "+testSpecURL])
}

func TestNewSpecURLReplacesPath(t *testing.T) {
	mock, hc := newMockTransport(t)

	c, err := New(context.Background(), "http://localhost/some/prefix/", WithHTTPClient(hc))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost/some/prefix/", c.URL())
	assert.Equal(t, 1, mock.GetCallCountInfo()["GET "+testSpecURL])
}

func TestNewRejectsRelativeURL(t *testing.T) {
	_, hc := newMockTransport(t)

	_, err := New(context.Background(), "localhost", WithHTTPClient(hc))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "url", verr.Field)
}

func TestNewSpecLoadError(t *testing.T) {
	tests := []struct {
		name      string
		responder httpmock.Responder
	}{
		{
			name:      "not found",
			responder: httpmock.NewStringResponder(http.StatusNotFound, "not here"),
		},
		{
			name:      "not json",
			responder: httpmock.NewStringResponder(http.StatusOK, "<html></html>"),
		},
		{
			name:      "openapi 3 document",
			responder: httpmock.NewStringResponder(http.StatusOK, `{"openapi": "3.0.0", "info": {"title": "x", "version": "1"}, "paths": {}}`),
		},
		{
			name:      "network failure",
			responder: httpmock.NewErrorResponder(errors.New("connection refused")),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mock := httpmock.NewMockTransport()
			mock.RegisterResponder(http.MethodGet, testSpecURL, tc.responder)

			c, err := New(context.Background(), testBaseURL, WithHTTPClient(&http.Client{Transport: mock}))
			assert.Nil(t, c)
			var serr *SpecLoadError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, testSpecURL, serr.URL)
		})
	}
}

func TestSpecLoadIsStable(t *testing.T) {
	first, _ := newTestClient(t)
	second, _ := newTestClient(t)

	require.Equal(t, first.Resources(), second.Resources())
	for _, res := range first.Resources() {
		assert.Equal(t, first.Spec().Operations(res), second.Spec().Operations(res), res)
	}
	assert.Equal(t, []string{
		OpCreateHost, OpCreateHostGroupMapping, OpDeleteHost, OpDeleteHostGroupMapping,
		OpListHostGroupMappings, OpListHosts, OpShowHost, OpShowHostGroupMapping,
		OpUpdateHost, OpUpdateHostGroupMapping,
	}, first.Spec().Operations("hosts"))
}

func TestAuthenticate(t *testing.T) {
	c, mock := newTestClient(t)
	registerLogin(t, mock, false)

	require.NoError(t, c.Authenticate(context.Background(), "admin", "password", false))
	assert.True(t, c.Authenticated())
	assert.Equal(t, "abc123", c.Token())
	assert.Equal(t, "admin", c.User())

	resp, err := c.Login().Show(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.Result.UserName)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
}

func TestNewWithCredentials(t *testing.T) {
	tests := []struct {
		name       string
		forceRenew bool
	}{
		{name: "default", forceRenew: false},
		{name: "force renew", forceRenew: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mock, hc := newMockTransport(t)
			registerLogin(t, mock, tc.forceRenew)

			c, err := New(context.Background(), testBaseURL,
				WithHTTPClient(hc),
				WithCredentials("admin", "password"),
				WithForceRenew(tc.forceRenew))
			require.NoError(t, err)
			assert.True(t, c.Authenticated())

			resp, err := c.Login().Show(context.Background())
			require.NoError(t, err)
			assert.Equal(t, "admin", resp.Result.UserName)
		})
	}
}

func TestAuthenticateRawResults(t *testing.T) {
	c, mock := newTestClient(t, WithRawResults())
	registerLogin(t, mock, false)

	require.NoError(t, c.Authenticate(context.Background(), "admin", "password", false))
	assert.True(t, c.Authenticated())

	resp, err := c.Call(context.Background(), "login", OpShowLogin, Params{})
	require.NoError(t, err)
	result, ok := resp.Result.(map[string]any)
	require.True(t, ok, "raw result should be a map, got %T", resp.Result)
	assert.Equal(t, "admin", result["user_name"])
}

func TestCallTypedResults(t *testing.T) {
	c, mock := newTestClient(t)
	registerLogin(t, mock, false)
	require.NoError(t, c.Authenticate(context.Background(), "admin", "password", false))

	resp, err := c.Call(context.Background(), "login", OpShowLogin, Params{})
	require.NoError(t, err)
	login, ok := resp.Result.(*Login)
	require.True(t, ok, "typed result should be *Login, got %T", resp.Result)
	assert.Equal(t, "admin", login.UserName)
	require.NotNil(t, login.ExpiresAt)
	assert.Equal(t, 2026, login.ExpiresAt.Year())
}

func TestAuthenticateFailed(t *testing.T) {
	c, mock := newTestClient(t)
	registerLogin(t, mock, false)

	err := c.Authenticate(context.Background(), "admin", "badpassword", false)
	var aerr *AuthError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, http.StatusUnauthorized, aerr.StatusCode())
	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "Username or password incorrect.", terr.Reason)
	assert.False(t, c.Authenticated())

	_, err = c.Login().Show(context.Background())
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, http.StatusForbidden, terr.StatusCode)
}

func TestNewWithBadCredentials(t *testing.T) {
	mock, hc := newMockTransport(t)
	registerLogin(t, mock, false)

	c, err := New(context.Background(), testBaseURL, WithHTTPClient(hc), WithCredentials("admin", "badpassword"))
	assert.Nil(t, c)
	var aerr *AuthError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, "admin", aerr.User)
	assert.Equal(t, http.StatusUnauthorized, aerr.StatusCode())
}

func TestAuthenticateMissingToken(t *testing.T) {
	c, mock := newTestClient(t)
	mock.RegisterResponder(http.MethodPost, testAPIURL+"/login/",
		httpmock.NewStringResponder(http.StatusOK, `{"user_name": "admin"}`))

	err := c.Authenticate(context.Background(), "admin", "password", false)
	var aerr *AuthError
	require.ErrorAs(t, err, &aerr)
	assert.Zero(t, aerr.StatusCode())
	assert.False(t, c.Authenticated())
}

func TestAuthenticateRequiresCredentials(t *testing.T) {
	c, mock := newTestClient(t)

	err := c.Authenticate(context.Background(), "admin", "", false)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "password", verr.Field)
	assert.Equal(t, 1, mock.GetTotalCallCount())
}

func TestTokenOnlySentToClientHost(t *testing.T) {
	c, mock := newTestClient(t)
	registerLogin(t, mock, false)
	require.NoError(t, c.Authenticate(context.Background(), "admin", "password", false))

	var seen []string
	mock.RegisterResponder(http.MethodGet, "http://elsewhere.example/ping", func(req *http.Request) (*http.Response, error) {
		seen = append(seen, req.Header.Get(TokenHeader))
		return httpmock.NewStringResponse(http.StatusOK, "{}"), nil
	})
	mock.RegisterResponder(http.MethodGet, "http://localhost/ping", func(req *http.Request) (*http.Response, error) {
		seen = append(seen, req.Header.Get(TokenHeader))
		return httpmock.NewStringResponse(http.StatusOK, "{}"), nil
	})

	_, err := c.http.R().Get("http://elsewhere.example/ping")
	require.NoError(t, err)
	_, err = c.http.R().Get("http://localhost/ping")
	require.NoError(t, err)
	assert.Equal(t, []string{"", "abc123"}, seen)
}

func TestDebugLogRedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.TextFormatter{DisableQuote: true})
	logger.SetLevel(logrus.DebugLevel)

	mock, hc := newMockTransport(t)
	registerLogin(t, mock, false)

	c, err := New(context.Background(), testBaseURL,
		WithHTTPClient(hc),
		WithLogger(logrus.NewEntry(logger)),
		WithDebug(true),
		WithCredentials("admin", "password"))
	require.NoError(t, err)
	_, err = c.Login().Show(context.Background())
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "/api/v1/login/")
	assert.NotContains(t, out, `: "password"`)
	assert.NotContains(t, out, "abc123")
	assert.Contains(t, out, `"password": "***"`)
	assert.Contains(t, out, `"token": "***"`)
}

func TestRedactBody(t *testing.T) {
	assert.Equal(t,
		`{"user_name": "admin", "password": "***", "force_renew": false}`,
		redactBody(`{"user_name": "admin", "password": "p\"w", "force_renew": false}`))
	assert.Equal(t, `{"token":"***"}`, redactBody(`{"token":"abc123"}`))
	assert.Equal(t, `{"name": "web"}`, redactBody(`{"name": "web"}`))
}
