// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package opsyclient is a client for the Opsy inventory API.
//
// The operation set is read at runtime from the server's Swagger document
// (GET /docs/swagger.json). Operations are reachable two ways: through the
// typed resource APIs (Zones, Hosts, HostGroupMappings, Groups, Login), or
// dynamically with Client.Call using the resource name and operation ID.
//
//	c, err := opsyclient.New(ctx, "https://opsy.example.com",
//		opsyclient.WithCredentials("admin", "password"))
//	if err != nil {
//		return err
//	}
//	zones, err := c.Zones().List(ctx, opsyclient.ZoneFilter{})
package opsyclient
