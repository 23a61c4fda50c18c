// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package opsyclient

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultTimeout bounds every request issued by the client.
const DefaultTimeout = 30 * time.Second

type options struct {
	userName   string
	password   string
	forceRenew bool
	rawResults bool
	httpClient *http.Client
	timeout    time.Duration
	log        *logrus.Entry
	debug      bool
	userAgent  string
}

// Option configures a Client.
type Option func(*options)

// WithCredentials makes New authenticate before returning. Both values must be
// non-empty for the login to happen.
func WithCredentials(userName, password string) Option {
	return func(o *options) {
		o.userName = userName
		o.password = password
	}
}

// WithForceRenew asks the server for a fresh token on the login issued by New.
func WithForceRenew(forceRenew bool) Option {
	return func(o *options) { o.forceRenew = forceRenew }
}

// WithRawResults makes Call decode results as plain maps and slices instead of
// the typed models.
func WithRawResults() Option {
	return func(o *options) { o.rawResults = true }
}

// WithHTTPClient sets the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

// WithTimeout overrides DefaultTimeout. Zero disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(log *logrus.Entry) Option {
	return func(o *options) { o.log = log }
}

// WithDebug enables resty request/response dumps on the logger.
func WithDebug(debug bool) Option {
	return func(o *options) { o.debug = debug }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

func defaultOptions() *options {
	discard := logrus.New()
	discard.Out = nopWriter{}
	return &options{
		timeout:   DefaultTimeout,
		log:       logrus.NewEntry(discard),
		userAgent: "opsyclient-go",
	}
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
