// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	opsycli "github.com/opsy/opsyclient/cmd/opsy/pkg"
	"github.com/opsy/opsyclient/pkg/opsyclient"
	"github.com/spf13/cobra"
)

var zoneColumns = []opsycli.Column{
	{Header: "ID", Field: "id"},
	{Header: "NAME", Field: "name"},
	{Header: "VARS", Field: "vars"},
}

func newZoneCommand(a *App) *cobra.Command {
	zoneCmd := &cobra.Command{
		Use:   "zone",
		Short: "Zone operations",
	}
	zoneCmd.AddCommand(
		newZoneListCommand(a),
		newZoneShowCommand(a),
		newZoneAddCommand(a),
		newZoneUpdateCommand(a),
		newZoneDeleteCommand(a),
	)
	return zoneCmd
}

func newZoneListCommand(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List zones",
		Args:  cobra.NoArgs,
		RunE: a.withClient(func(cmd *cobra.Command, c *opsyclient.Client, args []string) error {
			filter := opsyclient.ZoneFilter{Name: opsycli.OptionalString(cmd.Flags(), "name")}
			res, err := c.Zones().List(cmd.Context(), filter)
			if err != nil {
				return failed("list zones", "zones", err)
			}
			return printList(cmd, zoneColumns, res.Result)
		}),
	}
	cmd.Flags().String("name", "", "filter by name")
	return cmd
}

func newZoneShowCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <zone>",
		Short: "Show a zone by ID or name",
		Args:  cobra.ExactArgs(1),
		RunE: a.withClient(func(cmd *cobra.Command, c *opsyclient.Client, args []string) error {
			res, err := c.Zones().Show(cmd.Context(), args[0])
			if err != nil {
				return failed("show zone", args[0], err)
			}
			return printResult(cmd, res.Result)
		}),
	}
}

func newZoneAddCommand(a *App) *cobra.Command {
	var req opsyclient.ZoneCreate
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a zone",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			vars, err := opsycli.Vars(cmd.Flags())
			if err != nil {
				return err
			}
			req = opsyclient.ZoneCreate{Name: args[0], Vars: vars}
			return opsyclient.Validate(req)
		},
		RunE: a.withClient(func(cmd *cobra.Command, c *opsyclient.Client, args []string) error {
			res, err := c.Zones().Create(cmd.Context(), req)
			if err != nil {
				return failed("add zone", args[0], err)
			}
			return printResult(cmd, res.Result)
		}),
	}
	cmd.Flags().String("vars", "", "zone variables as a JSON object")
	return cmd
}

func newZoneUpdateCommand(a *App) *cobra.Command {
	var req opsyclient.ZoneUpdate
	cmd := &cobra.Command{
		Use:   "update <zone>",
		Short: "Update a zone",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			vars, err := opsycli.Vars(cmd.Flags())
			if err != nil {
				return err
			}
			req = opsyclient.ZoneUpdate{Name: opsycli.OptionalString(cmd.Flags(), "name"), Vars: vars}
			return opsyclient.Validate(req)
		},
		RunE: a.withClient(func(cmd *cobra.Command, c *opsyclient.Client, args []string) error {
			res, err := c.Zones().Update(cmd.Context(), args[0], req)
			if err != nil {
				return failed("update zone", args[0], err)
			}
			return printResult(cmd, res.Result)
		}),
	}
	cmd.Flags().String("name", "", "new name")
	cmd.Flags().String("vars", "", "zone variables as a JSON object, replacing the current ones")
	return cmd
}

func newZoneDeleteCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <zone>",
		Short: "Delete a zone",
		Args:  cobra.ExactArgs(1),
		RunE: a.withClient(func(cmd *cobra.Command, c *opsyclient.Client, args []string) error {
			if _, err := c.Zones().Delete(cmd.Context(), args[0]); err != nil {
				return failed("delete zone", args[0], err)
			}
			return printDeleted(cmd, "zone", args[0])
		}),
	}
}
