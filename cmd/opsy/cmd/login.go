// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/opsy/opsyclient/pkg/opsyclient"
	"github.com/spf13/cobra"
)

func newLoginCommand(a *App) *cobra.Command {
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Session operations",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the user the current token belongs to",
		Args:  cobra.NoArgs,
		RunE: a.withClient(func(cmd *cobra.Command, c *opsyclient.Client, args []string) error {
			res, err := c.Login().Show(cmd.Context())
			if err != nil {
				target := a.settings.Username
				if target == "" {
					target = "anonymous"
				}
				return failed("show login", target, err)
			}
			return printResult(cmd, res.Result)
		}),
	}

	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Log in and print the session token",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			a.forceRenew, _ = cmd.Flags().GetBool("force-renew")
			return nil
		},
		RunE: a.withClient(func(cmd *cobra.Command, c *opsyclient.Client, args []string) error {
			if !c.Authenticated() {
				return fmt.Errorf("not logged in: set --username or OPSY_USERNAME")
			}
			if jsonOutput(cmd) {
				return printResult(cmd, map[string]string{"user_name": c.User(), "token": c.Token()})
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), c.Token())
			return err
		}),
	}
	tokenCmd.Flags().Bool("force-renew", false, "ask the server for a new token")

	loginCmd.AddCommand(showCmd, tokenCmd)
	return loginCmd
}
