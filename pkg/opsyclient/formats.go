// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package opsyclient

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/getkin/kin-openapi/openapi3"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

// EmailRule accepts addresses with a plain local part and a dotted
// hostname domain.
var EmailRule = validation.Match(emailPattern).Error("must be a valid email address")

// ValidateEmail checks an address against EmailRule.
func ValidateEmail(address string) error {
	if err := validation.Validate(address, validation.Required, EmailRule); err != nil {
		return &ValidationError{Field: "email", Reason: err.Error()}
	}
	return nil
}

func init() {
	// Request bodies with "format: email" strings are checked before sending.
	openapi3.DefineStringFormatValidator("email", openapi3.NewCallbackValidator(ValidateEmail))
}
