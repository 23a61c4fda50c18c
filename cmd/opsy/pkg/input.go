// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package opsycli

import (
	"github.com/opsy/opsyclient/pkg/opsyclient"
	"github.com/spf13/pflag"
)

// OptionalString returns the flag value, or nil when the flag was not given.
func OptionalString(flags *pflag.FlagSet, name string) *string {
	if !flags.Changed(name) {
		return nil
	}
	v, err := flags.GetString(name)
	if err != nil {
		return nil
	}
	return &v
}

// OptionalInt returns the flag value, or nil when the flag was not given.
func OptionalInt(flags *pflag.FlagSet, name string) *int {
	if !flags.Changed(name) {
		return nil
	}
	v, err := flags.GetInt(name)
	if err != nil {
		return nil
	}
	return &v
}

// Vars parses the --vars flag. It returns nil when the flag was not given.
func Vars(flags *pflag.FlagSet) (map[string]any, error) {
	raw := OptionalString(flags, "vars")
	if raw == nil {
		return nil, nil
	}
	return opsyclient.ParseVars(*raw)
}

// BMCIP validates and normalizes the --bmc-ip flag. It returns nil when the
// flag was not given.
func BMCIP(flags *pflag.FlagSet) (*string, error) {
	raw := OptionalString(flags, "bmc-ip")
	if raw == nil {
		return nil, nil
	}
	ip, err := opsyclient.NormalizeIP("bmc_ip", *raw)
	if err != nil {
		return nil, err
	}
	return &ip, nil
}
