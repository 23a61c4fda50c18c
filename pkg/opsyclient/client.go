// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package opsyclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// TokenHeader carries the session token on authenticated requests.
const TokenHeader = "X-AUTH-TOKEN"

// Client talks to an Opsy server. The operation set comes from the server's
// own Swagger document, loaded once by New.
type Client struct {
	url      *url.URL
	apiBase  string
	spec     *Spec
	http     *resty.Client
	log      *logrus.Entry
	raw      bool
	token    string
	authUser string
}

// New loads the interface document of the server at baseURL and, when
// credentials are given, authenticates before returning.
func New(ctx context.Context, baseURL string, opts ...Option) (*Client, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, &ValidationError{Field: "url", Reason: "must be an absolute http(s) URL"}
	}
	specURL := u.ResolveReference(&url.URL{Path: SpecPath}).String()

	hc := o.httpClient
	if hc == nil {
		hc = &http.Client{}
	}
	rc := resty.NewWithClient(hc).
		SetLogger(o.log).
		SetDebug(o.debug).
		OnRequestLog(redactRequestLog).
		OnResponseLog(redactResponseLog).
		SetHeader("User-Agent", o.userAgent)
	if o.timeout > 0 {
		rc.SetTimeout(o.timeout)
	}

	c := &Client{
		url:  u,
		http: rc,
		log:  o.log,
		raw:  o.rawResults,
	}
	rc.OnBeforeRequest(c.attachToken)

	c.log.Debugf("loading API spec from %s", specURL)
	spec, err := fetchSpec(ctx, rc, specURL)
	if err != nil {
		return nil, err
	}
	c.spec = spec
	c.apiBase = (&url.URL{Scheme: u.Scheme, Host: u.Host, Path: spec.BasePath}).String()
	c.log.Debugf("loaded %q %s with resources %s", spec.Title, spec.Version, strings.Join(spec.Resources(), ","))

	if o.userName != "" && o.password != "" {
		if err := c.Authenticate(ctx, o.userName, o.password, o.forceRenew); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// URL returns the base URL the client was built with.
func (c *Client) URL() string { return c.url.String() }

// Spec returns the loaded interface document.
func (c *Client) Spec() *Spec { return c.spec }

// Resources returns the resource names exposed by the server.
func (c *Client) Resources() []string { return c.spec.Resources() }

// Authenticated reports whether a session token is attached to requests.
func (c *Client) Authenticated() bool { return c.token != "" }

// Token returns the session token, or "" when unauthenticated.
func (c *Client) Token() string { return c.token }

// User returns the user name of the last successful login.
func (c *Client) User() string { return c.authUser }

// Authenticate logs in and attaches the issued token to every later request
// to the client host. On failure the client keeps its previous state.
func (c *Client) Authenticate(ctx context.Context, userName, password string, forceRenew bool) error {
	body := LoginRequest{UserName: userName, Password: password, ForceRenew: forceRenew}
	if err := body.Validate(); err != nil {
		return &AuthError{User: userName, Err: asValidationError(err)}
	}

	resp, err := c.Call(ctx, "login", OpCreateLogin, Params{Body: body})
	if err != nil {
		return &AuthError{User: userName, Err: err}
	}

	token, err := c.extractToken(resp.Result)
	if err != nil {
		return &AuthError{User: userName, Err: err}
	}

	c.token = token
	c.authUser = userName
	c.log.WithField("user", userName).Debug("authenticated")
	return nil
}

func (c *Client) extractToken(result any) (string, error) {
	var token string
	switch v := result.(type) {
	case *Login:
		token = v.Token
	case map[string]any:
		token, _ = v["token"].(string)
	}
	if token == "" {
		return "", errors.New("login response carries no token")
	}
	return token, nil
}

// attachToken is the resty middleware that sets the session token header on
// requests bound for the client host.
func (c *Client) attachToken(_ *resty.Client, r *resty.Request) error {
	if c.token == "" {
		return nil
	}
	target, err := url.Parse(r.URL)
	if err != nil {
		return err
	}
	if target.Host == "" || strings.EqualFold(target.Hostname(), c.url.Hostname()) {
		r.SetHeader(TokenHeader, c.token)
	}
	return nil
}
