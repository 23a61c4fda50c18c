// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package opsyclient

import "context"

const (
	OpListZones  = "list_zones"
	OpShowZone   = "show_zone"
	OpCreateZone = "create_zone"
	OpUpdateZone = "update_zone"
	OpDeleteZone = "delete_zone"
)

// ZoneAPI exposes the zones resource.
type ZoneAPI interface {
	List(ctx context.Context, filter ZoneFilter) (*Response[[]Zone], error)
	Show(ctx context.Context, idOrName string) (*Response[Zone], error)
	Create(ctx context.Context, zone ZoneCreate) (*Response[Zone], error)
	Update(ctx context.Context, idOrName string, zone ZoneUpdate) (*Response[Zone], error)
	Delete(ctx context.Context, idOrName string) (*Response[any], error)
}

type zoneAPI struct{ c *Client }

// Zones returns the zones resource API.
func (c *Client) Zones() ZoneAPI { return zoneAPI{c: c} }

func (a zoneAPI) List(ctx context.Context, filter ZoneFilter) (*Response[[]Zone], error) {
	return invoke[[]Zone](ctx, a.c, "zones", OpListZones, Params{Query: filter.query()})
}

func (a zoneAPI) Show(ctx context.Context, idOrName string) (*Response[Zone], error) {
	return invoke[Zone](ctx, a.c, "zones", OpShowZone, Params{Path: map[string]string{"id_or_name": idOrName}})
}

func (a zoneAPI) Create(ctx context.Context, zone ZoneCreate) (*Response[Zone], error) {
	if err := zone.Validate(); err != nil {
		return nil, asValidationError(err)
	}
	return invoke[Zone](ctx, a.c, "zones", OpCreateZone, Params{Body: zone})
}

func (a zoneAPI) Update(ctx context.Context, idOrName string, zone ZoneUpdate) (*Response[Zone], error) {
	if err := zone.Validate(); err != nil {
		return nil, asValidationError(err)
	}
	return invoke[Zone](ctx, a.c, "zones", OpUpdateZone, Params{
		Path: map[string]string{"id_or_name": idOrName},
		Body: zone,
	})
}

func (a zoneAPI) Delete(ctx context.Context, idOrName string) (*Response[any], error) {
	return invoke[any](ctx, a.c, "zones", OpDeleteZone, Params{Path: map[string]string{"id_or_name": idOrName}})
}
