// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=...".
var Version = "dev"

func newVersionCommand(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the client version, and the server API version with --server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := map[string]string{"client": Version}
			if server, _ := cmd.Flags().GetBool("server"); server {
				c, err := a.connect(cmd.Context())
				if err != nil {
					return err
				}
				spec := c.Spec()
				info["server_title"] = spec.Title
				info["server_version"] = spec.Version
			}

			if jsonOutput(cmd) {
				return printResult(cmd, info)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "opsy %s\n", Version)
			if title, ok := info["server_title"]; ok {
				fmt.Fprintf(cmd.OutOrStdout(), "server: %s %s\n", title, info["server_version"])
			}
			return nil
		},
	}
	cmd.Flags().Bool("server", false, "also load the server document and print its API version")
	return cmd
}
