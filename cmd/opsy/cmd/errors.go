// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/opsy/opsyclient/pkg/opsyclient"
)

var errorLabel = color.New(color.FgRed, color.Bold).SprintFunc()

// opError is a failed resource call, reported as
// "Unable to <verb> '<target>': HTTP <code> - <reason>".
type opError struct {
	verb   string
	target string
	err    error
}

func (e *opError) Error() string {
	var te *opsyclient.TransportError
	if errors.As(e.err, &te) && te.StatusCode != 0 {
		return fmt.Sprintf("Unable to %s '%s': HTTP %d - %s", e.verb, e.target, te.StatusCode, te.Reason)
	}
	if errors.As(e.err, &te) && te.Err != nil {
		return fmt.Sprintf("Unable to %s '%s': %v", e.verb, e.target, te.Err)
	}
	return fmt.Sprintf("Unable to %s '%s': %v", e.verb, e.target, e.err)
}

func (e *opError) Unwrap() error { return e.err }

// failed attributes err to the call "<verb> '<target>'". Local validation
// failures are passed through unchanged.
func failed(verb, target string, err error) error {
	var verr *opsyclient.ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	return &opError{verb: verb, target: target, err: err}
}

// reportError writes the single line describing err.
func reportError(w io.Writer, err error) {
	var (
		oerr *opError
		aerr *opsyclient.AuthError
		serr *opsyclient.SpecLoadError
		verr *opsyclient.ValidationError
	)
	switch {
	case errors.As(err, &oerr):
		fmt.Fprintln(w, oerr.Error())
	case errors.As(err, &aerr), errors.As(err, &serr):
		fmt.Fprintln(w, errorLabel("error:"), err)
	case errors.As(err, &verr):
		fmt.Fprintf(w, "Invalid %s: %s\n", verr.Field, verr.Reason)
	default:
		fmt.Fprintln(w, errorLabel("error:"), err)
	}
}
