// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	opsycli "github.com/opsy/opsyclient/cmd/opsy/pkg"
	"github.com/opsy/opsyclient/pkg/opsyclient"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var groupColumns = []opsycli.Column{
	{Header: "ID", Field: "id"},
	{Header: "NAME", Field: "name"},
	{Header: "ZONE_ID", Field: "zone_id"},
	{Header: "HOST_ID", Field: "host_id"},
	{Header: "PARENT_ID", Field: "parent_id"},
	{Header: "DEFAULT_PRIORITY", Field: "default_priority"},
}

func newGroupCommand(a *App) *cobra.Command {
	groupCmd := &cobra.Command{
		Use:   "group",
		Short: "Group operations",
	}
	groupCmd.AddCommand(
		newGroupListCommand(a),
		newGroupShowCommand(a),
		newGroupAddCommand(a),
		newGroupUpdateCommand(a),
		newGroupDeleteCommand(a),
	)
	return groupCmd
}

func newGroupListCommand(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List groups",
		Args:  cobra.NoArgs,
		RunE: a.withClient(func(cmd *cobra.Command, c *opsyclient.Client, args []string) error {
			f := cmd.Flags()
			filter := opsyclient.GroupFilter{
				Name:            opsycli.OptionalString(f, "name"),
				Zone:            opsycli.OptionalString(f, "zone"),
				Host:            opsycli.OptionalString(f, "host"),
				Parent:          opsycli.OptionalString(f, "parent"),
				DefaultPriority: opsycli.OptionalInt(f, "default-priority"),
			}
			res, err := c.Groups().List(cmd.Context(), filter)
			if err != nil {
				return failed("list groups", "groups", err)
			}
			return printList(cmd, groupColumns, res.Result)
		}),
	}
	cmd.Flags().String("name", "", "filter by name")
	cmd.Flags().String("zone", "", "filter by zone ID or name")
	cmd.Flags().String("host", "", "filter by host ID or name")
	cmd.Flags().String("parent", "", "filter by parent group ID or name")
	cmd.Flags().Int("default-priority", 0, "filter by default priority")
	return cmd
}

func newGroupShowCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <group>",
		Short: "Show a group by ID or name",
		Args:  cobra.ExactArgs(1),
		RunE: a.withClient(func(cmd *cobra.Command, c *opsyclient.Client, args []string) error {
			res, err := c.Groups().Show(cmd.Context(), args[0])
			if err != nil {
				return failed("show group", args[0], err)
			}
			return printResult(cmd, res.Result)
		}),
	}
}

// addGroupFieldFlags registers the optional group attributes shared by add and update.
func addGroupFieldFlags(f *pflag.FlagSet) {
	f.String("zone", "", "zone ID the group is scoped to")
	f.String("host", "", "host ID the group is scoped to")
	f.String("parent", "", "parent group ID")
	f.Int("default-priority", 0, "priority given to new host mappings")
	f.String("vars", "", "group variables as a JSON object")
}

func newGroupAddCommand(a *App) *cobra.Command {
	var req opsyclient.GroupCreate
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a group",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			vars, err := opsycli.Vars(f)
			if err != nil {
				return err
			}
			req = opsyclient.GroupCreate{
				Name:            args[0],
				ZoneID:          opsycli.OptionalString(f, "zone"),
				HostID:          opsycli.OptionalString(f, "host"),
				ParentID:        opsycli.OptionalString(f, "parent"),
				DefaultPriority: opsycli.OptionalInt(f, "default-priority"),
				Vars:            vars,
			}
			return opsyclient.Validate(req)
		},
		RunE: a.withClient(func(cmd *cobra.Command, c *opsyclient.Client, args []string) error {
			res, err := c.Groups().Create(cmd.Context(), req)
			if err != nil {
				return failed("add group", args[0], err)
			}
			return printResult(cmd, res.Result)
		}),
	}
	addGroupFieldFlags(cmd.Flags())
	return cmd
}

func newGroupUpdateCommand(a *App) *cobra.Command {
	var req opsyclient.GroupUpdate
	cmd := &cobra.Command{
		Use:   "update <group>",
		Short: "Update a group",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			vars, err := opsycli.Vars(f)
			if err != nil {
				return err
			}
			req = opsyclient.GroupUpdate{
				Name:            opsycli.OptionalString(f, "name"),
				ZoneID:          opsycli.OptionalString(f, "zone"),
				HostID:          opsycli.OptionalString(f, "host"),
				ParentID:        opsycli.OptionalString(f, "parent"),
				DefaultPriority: opsycli.OptionalInt(f, "default-priority"),
				Vars:            vars,
			}
			return opsyclient.Validate(req)
		},
		RunE: a.withClient(func(cmd *cobra.Command, c *opsyclient.Client, args []string) error {
			res, err := c.Groups().Update(cmd.Context(), args[0], req)
			if err != nil {
				return failed("update group", args[0], err)
			}
			return printResult(cmd, res.Result)
		}),
	}
	cmd.Flags().String("name", "", "new name")
	addGroupFieldFlags(cmd.Flags())
	return cmd
}

func newGroupDeleteCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <group>",
		Short: "Delete a group",
		Args:  cobra.ExactArgs(1),
		RunE: a.withClient(func(cmd *cobra.Command, c *opsyclient.Client, args []string) error {
			if _, err := c.Groups().Delete(cmd.Context(), args[0]); err != nil {
				return failed("delete group", args[0], err)
			}
			return printDeleted(cmd, "group", args[0])
		}),
	}
}
