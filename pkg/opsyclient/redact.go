// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package opsyclient

import (
	"regexp"

	"github.com/go-resty/resty/v2"
)

const redacted = "***"

// secretMember matches the JSON members whose values never reach the debug log.
var secretMember = regexp.MustCompile(`("(?:password|token)"\s*:\s*)"(?:[^"\\]|\\.)*"`)

func redactBody(body string) string {
	return secretMember.ReplaceAllString(body, `$1"`+redacted+`"`)
}

func redactRequestLog(rl *resty.RequestLog) error {
	if rl.Header.Get(TokenHeader) != "" {
		rl.Header.Set(TokenHeader, redacted)
	}
	rl.Body = redactBody(rl.Body)
	return nil
}

func redactResponseLog(rl *resty.ResponseLog) error {
	rl.Body = redactBody(rl.Body)
	return nil
}
