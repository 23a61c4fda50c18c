// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	opsycli "github.com/opsy/opsyclient/cmd/opsy/pkg"
	"github.com/opsy/opsyclient/pkg/opsyclient"
	"github.com/spf13/cobra"
)

var groupMappingColumns = []opsycli.Column{
	{Header: "GROUP_ID", Field: "group_id"},
	{Header: "GROUP_NAME", Field: "group_name"},
	{Header: "PRIORITY", Field: "priority"},
}

func newGroupMappingCommand(a *App) *cobra.Command {
	mappingCmd := &cobra.Command{
		Use:     "groupmapping",
		Aliases: []string{"gm"},
		Short:   "Host to group mapping operations",
	}
	mappingCmd.AddCommand(
		newGroupMappingListCommand(a),
		newGroupMappingShowCommand(a),
		newGroupMappingAddCommand(a),
		newGroupMappingUpdateCommand(a),
		newGroupMappingDeleteCommand(a),
	)
	return mappingCmd
}

func mappingTarget(args []string) string {
	return args[0] + "/" + args[1]
}

func newGroupMappingListCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <host>",
		Short: "List the groups a host belongs to",
		Args:  cobra.ExactArgs(1),
		RunE: a.withClient(func(cmd *cobra.Command, c *opsyclient.Client, args []string) error {
			res, err := c.HostGroupMappings().List(cmd.Context(), args[0])
			if err != nil {
				return failed("list group mappings", args[0], err)
			}
			return printList(cmd, groupMappingColumns, res.Result)
		}),
	}
}

func newGroupMappingShowCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <host> <group>",
		Short: "Show one group mapping of a host",
		Args:  cobra.ExactArgs(2),
		RunE: a.withClient(func(cmd *cobra.Command, c *opsyclient.Client, args []string) error {
			res, err := c.HostGroupMappings().Show(cmd.Context(), args[0], args[1])
			if err != nil {
				return failed("show group mapping", mappingTarget(args), err)
			}
			return printResult(cmd, res.Result)
		}),
	}
}

func newGroupMappingAddCommand(a *App) *cobra.Command {
	var priority *int
	cmd := &cobra.Command{
		Use:   "add <host> <group>",
		Short: "Add a host to a group",
		Long:  "Add a host to a group. The group may be given by ID or by name.",
		Args:  cobra.ExactArgs(2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			priority = opsycli.OptionalInt(cmd.Flags(), "priority")
			return opsyclient.ValidatePriority(priority)
		},
		RunE: a.withClient(func(cmd *cobra.Command, c *opsyclient.Client, args []string) error {
			groupID, err := resolveGroupID(cmd.Context(), c, args[1])
			if err != nil {
				return failed("add group mapping", mappingTarget(args), err)
			}
			req := opsyclient.HostGroupMappingCreate{GroupID: groupID, Priority: priority}
			res, err := c.HostGroupMappings().Create(cmd.Context(), args[0], req)
			if err != nil {
				return failed("add group mapping", mappingTarget(args), err)
			}
			return printResult(cmd, res.Result)
		}),
	}
	cmd.Flags().Int("priority", 0, "mapping priority, defaults to the group's default priority")
	return cmd
}

func newGroupMappingUpdateCommand(a *App) *cobra.Command {
	var req opsyclient.HostGroupMappingUpdate
	cmd := &cobra.Command{
		Use:   "update <host> <group>",
		Short: "Change the priority of a group mapping",
		Args:  cobra.ExactArgs(2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			req = opsyclient.HostGroupMappingUpdate{Priority: opsycli.OptionalInt(cmd.Flags(), "priority")}
			return opsyclient.Validate(req)
		},
		RunE: a.withClient(func(cmd *cobra.Command, c *opsyclient.Client, args []string) error {
			res, err := c.HostGroupMappings().Update(cmd.Context(), args[0], args[1], req)
			if err != nil {
				return failed("update group mapping", mappingTarget(args), err)
			}
			return printResult(cmd, res.Result)
		}),
	}
	cmd.Flags().Int("priority", 0, "mapping priority")
	return cmd
}

func newGroupMappingDeleteCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <host> <group>",
		Short: "Remove a host from a group",
		Args:  cobra.ExactArgs(2),
		RunE: a.withClient(func(cmd *cobra.Command, c *opsyclient.Client, args []string) error {
			if _, err := c.HostGroupMappings().Delete(cmd.Context(), args[0], args[1]); err != nil {
				return failed("delete group mapping", mappingTarget(args), err)
			}
			return printDeleted(cmd, "group mapping", mappingTarget(args))
		}),
	}
}

// resolveGroupID returns idOrName when it is a UUID, else the ID of the only
// group with that name.
func resolveGroupID(ctx context.Context, c *opsyclient.Client, idOrName string) (string, error) {
	if id, err := uuid.Parse(idOrName); err == nil {
		return id.String(), nil
	}
	res, err := c.Groups().List(ctx, opsyclient.GroupFilter{Name: &idOrName})
	if err != nil {
		return "", err
	}
	switch len(res.Result) {
	case 0:
		return "", fmt.Errorf("no group named %q", idOrName)
	case 1:
		return res.Result[0].ID.String(), nil
	default:
		return "", fmt.Errorf("group name %q is ambiguous, use the group ID", idOrName)
	}
}
