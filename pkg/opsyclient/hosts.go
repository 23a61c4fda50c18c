// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package opsyclient

import "context"

const (
	OpListHosts  = "list_hosts"
	OpShowHost   = "show_host"
	OpCreateHost = "create_host"
	OpUpdateHost = "update_host"
	OpDeleteHost = "delete_host"

	OpListHostGroupMappings  = "list_host_group_mappings"
	OpShowHostGroupMapping   = "show_host_group_mapping"
	OpCreateHostGroupMapping = "create_host_group_mapping"
	OpUpdateHostGroupMapping = "update_host_group_mapping"
	OpDeleteHostGroupMapping = "delete_host_group_mapping"
)

// HostAPI exposes the hosts resource.
type HostAPI interface {
	List(ctx context.Context, filter HostFilter) (*Response[[]Host], error)
	Show(ctx context.Context, idOrName string) (*Response[Host], error)
	Create(ctx context.Context, host HostCreate) (*Response[Host], error)
	Update(ctx context.Context, idOrName string, host HostUpdate) (*Response[Host], error)
	Delete(ctx context.Context, idOrName string) (*Response[any], error)
}

// HostGroupMappingAPI exposes the group mappings nested under a host.
type HostGroupMappingAPI interface {
	List(ctx context.Context, hostIDOrName string) (*Response[[]HostGroupMapping], error)
	Show(ctx context.Context, hostIDOrName, groupIDOrName string) (*Response[HostGroupMapping], error)
	Create(ctx context.Context, hostIDOrName string, mapping HostGroupMappingCreate) (*Response[HostGroupMapping], error)
	Update(ctx context.Context, hostIDOrName, groupIDOrName string, mapping HostGroupMappingUpdate) (*Response[HostGroupMapping], error)
	Delete(ctx context.Context, hostIDOrName, groupIDOrName string) (*Response[any], error)
}

type hostAPI struct{ c *Client }

// Hosts returns the hosts resource API.
func (c *Client) Hosts() HostAPI { return hostAPI{c: c} }

func (a hostAPI) List(ctx context.Context, filter HostFilter) (*Response[[]Host], error) {
	return invoke[[]Host](ctx, a.c, "hosts", OpListHosts, Params{Query: filter.query()})
}

func (a hostAPI) Show(ctx context.Context, idOrName string) (*Response[Host], error) {
	return invoke[Host](ctx, a.c, "hosts", OpShowHost, Params{Path: hostPath(idOrName)})
}

func (a hostAPI) Create(ctx context.Context, host HostCreate) (*Response[Host], error) {
	if err := host.Validate(); err != nil {
		return nil, asValidationError(err)
	}
	return invoke[Host](ctx, a.c, "hosts", OpCreateHost, Params{Body: host})
}

func (a hostAPI) Update(ctx context.Context, idOrName string, host HostUpdate) (*Response[Host], error) {
	if err := host.Validate(); err != nil {
		return nil, asValidationError(err)
	}
	return invoke[Host](ctx, a.c, "hosts", OpUpdateHost, Params{Path: hostPath(idOrName), Body: host})
}

func (a hostAPI) Delete(ctx context.Context, idOrName string) (*Response[any], error) {
	return invoke[any](ctx, a.c, "hosts", OpDeleteHost, Params{Path: hostPath(idOrName)})
}

type hostGroupMappingAPI struct{ c *Client }

// HostGroupMappings returns the API of the group mappings nested under hosts.
func (c *Client) HostGroupMappings() HostGroupMappingAPI { return hostGroupMappingAPI{c: c} }

func (a hostGroupMappingAPI) List(ctx context.Context, hostIDOrName string) (*Response[[]HostGroupMapping], error) {
	return invoke[[]HostGroupMapping](ctx, a.c, "hosts", OpListHostGroupMappings, Params{Path: hostPath(hostIDOrName)})
}

func (a hostGroupMappingAPI) Show(ctx context.Context, hostIDOrName, groupIDOrName string) (*Response[HostGroupMapping], error) {
	return invoke[HostGroupMapping](ctx, a.c, "hosts", OpShowHostGroupMapping, Params{Path: mappingPath(hostIDOrName, groupIDOrName)})
}

func (a hostGroupMappingAPI) Create(ctx context.Context, hostIDOrName string, mapping HostGroupMappingCreate) (*Response[HostGroupMapping], error) {
	if err := mapping.Validate(); err != nil {
		return nil, asValidationError(err)
	}
	return invoke[HostGroupMapping](ctx, a.c, "hosts", OpCreateHostGroupMapping, Params{Path: hostPath(hostIDOrName), Body: mapping})
}

func (a hostGroupMappingAPI) Update(ctx context.Context, hostIDOrName, groupIDOrName string, mapping HostGroupMappingUpdate) (*Response[HostGroupMapping], error) {
	if err := mapping.Validate(); err != nil {
		return nil, asValidationError(err)
	}
	return invoke[HostGroupMapping](ctx, a.c, "hosts", OpUpdateHostGroupMapping, Params{
		Path: mappingPath(hostIDOrName, groupIDOrName),
		Body: mapping,
	})
}

func (a hostGroupMappingAPI) Delete(ctx context.Context, hostIDOrName, groupIDOrName string) (*Response[any], error) {
	return invoke[any](ctx, a.c, "hosts", OpDeleteHostGroupMapping, Params{Path: mappingPath(hostIDOrName, groupIDOrName)})
}

func hostPath(idOrName string) map[string]string {
	return map[string]string{"id_or_name": idOrName}
}

func mappingPath(hostIDOrName, groupIDOrName string) map[string]string {
	return map[string]string{"id_or_name": hostIDOrName, "group_id_or_name": groupIDOrName}
}
