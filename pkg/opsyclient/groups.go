// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package opsyclient

import "context"

const (
	OpListGroups  = "list_groups"
	OpShowGroup   = "show_group"
	OpCreateGroup = "create_group"
	OpUpdateGroup = "update_group"
	OpDeleteGroup = "delete_group"
)

// GroupAPI exposes the groups resource.
type GroupAPI interface {
	List(ctx context.Context, filter GroupFilter) (*Response[[]Group], error)
	Show(ctx context.Context, idOrName string) (*Response[Group], error)
	Create(ctx context.Context, group GroupCreate) (*Response[Group], error)
	Update(ctx context.Context, idOrName string, group GroupUpdate) (*Response[Group], error)
	Delete(ctx context.Context, idOrName string) (*Response[any], error)
}

type groupAPI struct{ c *Client }

// Groups returns the groups resource API.
func (c *Client) Groups() GroupAPI { return groupAPI{c: c} }

func (a groupAPI) List(ctx context.Context, filter GroupFilter) (*Response[[]Group], error) {
	return invoke[[]Group](ctx, a.c, "groups", OpListGroups, Params{Query: filter.query()})
}

func (a groupAPI) Show(ctx context.Context, idOrName string) (*Response[Group], error) {
	return invoke[Group](ctx, a.c, "groups", OpShowGroup, Params{Path: map[string]string{"id_or_name": idOrName}})
}

func (a groupAPI) Create(ctx context.Context, group GroupCreate) (*Response[Group], error) {
	if err := group.Validate(); err != nil {
		return nil, asValidationError(err)
	}
	return invoke[Group](ctx, a.c, "groups", OpCreateGroup, Params{Body: group})
}

func (a groupAPI) Update(ctx context.Context, idOrName string, group GroupUpdate) (*Response[Group], error) {
	if err := group.Validate(); err != nil {
		return nil, asValidationError(err)
	}
	return invoke[Group](ctx, a.c, "groups", OpUpdateGroup, Params{
		Path: map[string]string{"id_or_name": idOrName},
		Body: group,
	})
}

func (a groupAPI) Delete(ctx context.Context, idOrName string) (*Response[any], error) {
	return invoke[any](ctx, a.c, "groups", OpDeleteGroup, Params{Path: map[string]string{"id_or_name": idOrName}})
}
