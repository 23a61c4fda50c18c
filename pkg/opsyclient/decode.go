// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package opsyclient

import (
	"bytes"
	"encoding/json"

	"github.com/mitchellh/mapstructure"
)

// modelFactories maps operation IDs to the typed model their result decodes
// into. Operations missing here decode as raw values even in typed mode.
var modelFactories = map[string]func() any{
	OpListZones:  func() any { return &[]Zone{} },
	OpShowZone:   func() any { return &Zone{} },
	OpCreateZone: func() any { return &Zone{} },
	OpUpdateZone: func() any { return &Zone{} },

	OpListHosts:  func() any { return &[]Host{} },
	OpShowHost:   func() any { return &Host{} },
	OpCreateHost: func() any { return &Host{} },
	OpUpdateHost: func() any { return &Host{} },

	OpListHostGroupMappings:  func() any { return &[]HostGroupMapping{} },
	OpShowHostGroupMapping:   func() any { return &HostGroupMapping{} },
	OpCreateHostGroupMapping: func() any { return &HostGroupMapping{} },
	OpUpdateHostGroupMapping: func() any { return &HostGroupMapping{} },

	OpListGroups:  func() any { return &[]Group{} },
	OpShowGroup:   func() any { return &Group{} },
	OpCreateGroup: func() any { return &Group{} },
	OpUpdateGroup: func() any { return &Group{} },

	OpCreateLogin: func() any { return &Login{} },
	OpShowLogin:   func() any { return &Login{} },
}

func decodeRaw(body []byte) (any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func decodeModel(operationID string, body []byte) (any, error) {
	newModel, ok := modelFactories[operationID]
	if !ok {
		return decodeRaw(body)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	out := newModel()
	if err := decodeInto(body, out); err != nil {
		return nil, err
	}
	if list, isList := out.(*[]Zone); isList {
		return *list, nil
	}
	if list, isList := out.(*[]Host); isList {
		return *list, nil
	}
	if list, isList := out.(*[]HostGroupMapping); isList {
		return *list, nil
	}
	if list, isList := out.(*[]Group); isList {
		return *list, nil
	}
	return out, nil
}

// decodeInto decodes a JSON body into a typed model. Properties the model does
// not declare are ignored and missing ones keep their zero value.
func decodeInto(body []byte, out any) error {
	raw, err := decodeRaw(body)
	if err != nil {
		return err
	}
	if raw == nil {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "json",
		Result:     out,
		DecodeHook: mapstructure.TextUnmarshallerHookFunc(),
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}
