// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package opsyclient

import "context"

const (
	OpCreateLogin = "create_login"
	OpShowLogin   = "show_login"
)

// LoginAPI exposes the login resource. Create does not change the client
// session; use Client.Authenticate for that.
type LoginAPI interface {
	Show(ctx context.Context) (*Response[Login], error)
	Create(ctx context.Context, req LoginRequest) (*Response[Login], error)
}

type loginAPI struct{ c *Client }

// Login returns the login resource API.
func (c *Client) Login() LoginAPI { return loginAPI{c: c} }

func (a loginAPI) Show(ctx context.Context) (*Response[Login], error) {
	return invoke[Login](ctx, a.c, "login", OpShowLogin, Params{})
}

func (a loginAPI) Create(ctx context.Context, req LoginRequest) (*Response[Login], error) {
	if err := req.Validate(); err != nil {
		return nil, asValidationError(err)
	}
	return invoke[Login](ctx, a.c, "login", OpCreateLogin, Params{Body: req})
}
