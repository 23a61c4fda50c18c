// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	opsycli "github.com/opsy/opsyclient/cmd/opsy/pkg"
	"github.com/opsy/opsyclient/pkg/opsyclient"
	"github.com/spf13/cobra"
)

var hostColumns = []opsycli.Column{
	{Header: "ID", Field: "id"},
	{Header: "NAME", Field: "name"},
	{Header: "ZONE_ID", Field: "zone_id"},
	{Header: "BMC_IP", Field: "bmc_ip"},
}

func newHostCommand(a *App) *cobra.Command {
	hostCmd := &cobra.Command{
		Use:   "host",
		Short: "Host operations",
	}
	hostCmd.AddCommand(
		newHostListCommand(a),
		newHostShowCommand(a),
		newHostAddCommand(a),
		newHostUpdateCommand(a),
		newHostDeleteCommand(a),
		newGroupMappingCommand(a),
	)
	return hostCmd
}

func newHostListCommand(a *App) *cobra.Command {
	var filter opsyclient.HostFilter
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List hosts",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			ip, err := opsycli.BMCIP(cmd.Flags())
			if err != nil {
				return err
			}
			filter = opsyclient.HostFilter{
				Zone:  opsycli.OptionalString(cmd.Flags(), "zone"),
				Name:  opsycli.OptionalString(cmd.Flags(), "name"),
				BMCIP: ip,
			}
			return nil
		},
		RunE: a.withClient(func(cmd *cobra.Command, c *opsyclient.Client, args []string) error {
			res, err := c.Hosts().List(cmd.Context(), filter)
			if err != nil {
				return failed("list hosts", "hosts", err)
			}
			return printList(cmd, hostColumns, res.Result)
		}),
	}
	cmd.Flags().String("zone", "", "filter by zone ID or name")
	cmd.Flags().String("name", "", "filter by name")
	cmd.Flags().String("bmc-ip", "", "filter by BMC IP address")
	return cmd
}

func newHostShowCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <host>",
		Short: "Show a host by ID or name",
		Args:  cobra.ExactArgs(1),
		RunE: a.withClient(func(cmd *cobra.Command, c *opsyclient.Client, args []string) error {
			res, err := c.Hosts().Show(cmd.Context(), args[0])
			if err != nil {
				return failed("show host", args[0], err)
			}
			return printResult(cmd, res.Result)
		}),
	}
}

func newHostAddCommand(a *App) *cobra.Command {
	var req opsyclient.HostCreate
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a host",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			vars, err := opsycli.Vars(cmd.Flags())
			if err != nil {
				return err
			}
			ip, err := opsycli.BMCIP(cmd.Flags())
			if err != nil {
				return err
			}
			zone, _ := cmd.Flags().GetString("zone")
			req = opsyclient.HostCreate{ZoneID: zone, Name: args[0], Vars: vars}
			if ip != nil {
				req.BMCIP = *ip
			}
			return opsyclient.Validate(req)
		},
		RunE: a.withClient(func(cmd *cobra.Command, c *opsyclient.Client, args []string) error {
			res, err := c.Hosts().Create(cmd.Context(), req)
			if err != nil {
				return failed("add host", args[0], err)
			}
			return printResult(cmd, res.Result)
		}),
	}
	cmd.Flags().String("zone", "", "zone ID (required)")
	cmd.Flags().String("bmc-ip", "", "BMC IP address")
	cmd.Flags().String("vars", "", "host variables as a JSON object")
	_ = cmd.MarkFlagRequired("zone")
	return cmd
}

func newHostUpdateCommand(a *App) *cobra.Command {
	var req opsyclient.HostUpdate
	cmd := &cobra.Command{
		Use:   "update <host>",
		Short: "Update a host",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			vars, err := opsycli.Vars(cmd.Flags())
			if err != nil {
				return err
			}
			ip, err := opsycli.BMCIP(cmd.Flags())
			if err != nil {
				return err
			}
			req = opsyclient.HostUpdate{
				ZoneID: opsycli.OptionalString(cmd.Flags(), "zone"),
				Name:   opsycli.OptionalString(cmd.Flags(), "name"),
				BMCIP:  ip,
				Vars:   vars,
			}
			return opsyclient.Validate(req)
		},
		RunE: a.withClient(func(cmd *cobra.Command, c *opsyclient.Client, args []string) error {
			res, err := c.Hosts().Update(cmd.Context(), args[0], req)
			if err != nil {
				return failed("update host", args[0], err)
			}
			return printResult(cmd, res.Result)
		}),
	}
	cmd.Flags().String("name", "", "new name")
	cmd.Flags().String("zone", "", "move to the zone with this ID")
	cmd.Flags().String("bmc-ip", "", "BMC IP address")
	cmd.Flags().String("vars", "", "host variables as a JSON object, replacing the current ones")
	return cmd
}

func newHostDeleteCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <host>",
		Short: "Delete a host",
		Args:  cobra.ExactArgs(1),
		RunE: a.withClient(func(cmd *cobra.Command, c *opsyclient.Client, args []string) error {
			if _, err := c.Hosts().Delete(cmd.Context(), args[0]); err != nil {
				return failed("delete host", args[0], err)
			}
			return printDeleted(cmd, "host", args[0])
		}),
	}
}
