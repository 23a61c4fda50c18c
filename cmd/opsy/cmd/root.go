// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	opsycli "github.com/opsy/opsyclient/cmd/opsy/pkg"
	"github.com/opsy/opsyclient/pkg/opsyclient"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// App holds the state of one opsy invocation. Leaf commands receive the
// client built here; nothing is kept in package globals.
type App struct {
	Out io.Writer
	Err io.Writer
	In  *os.File

	// HTTPClient overrides the transport used by the API client.
	HTTPClient *http.Client
	// ReadPassword is called when a username is set without a password.
	ReadPassword func() (string, error)

	v        *viper.Viper
	settings *opsycli.Settings
	log      *logrus.Entry
	client   *opsyclient.Client
	// forceRenew asks the server for a fresh token at login.
	forceRenew bool
}

// NewApp returns an App wired to the process stdio.
func NewApp() *App {
	a := &App{Out: os.Stdout, Err: os.Stderr, In: os.Stdin}
	a.ReadPassword = func() (string, error) {
		return opsycli.PromptPassword(a.In, a.Err)
	}
	return a
}

// Run executes the command line and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	root := NewRootCommand(a)
	root.SetArgs(args)
	root.SetOut(a.Out)
	root.SetErr(a.Err)
	if err := root.ExecuteContext(ctx); err != nil {
		reportError(a.Err, err)
		return 1
	}
	return 0
}

// NewRootCommand builds the opsy command tree around a.
func NewRootCommand(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "opsy",
		Short:         "Command line client for the Opsy inventory API",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	pf := root.PersistentFlags()
	pf.String(opsycli.KeyConfig, opsycli.ConfigPath(), "path to config file (env OPSY_CONFIG)")
	pf.StringP(opsycli.KeyURL, "U", "", "Opsy server URL (env OPSY_URL)")
	pf.StringP(opsycli.KeyUsername, "u", "", "user name to log in with (env OPSY_USERNAME)")
	pf.StringP(opsycli.KeyPassword, "p", "", "password, prompted when omitted (env OPSY_PASSWORD)")
	pf.Duration(opsycli.KeyTimeout, opsyclient.DefaultTimeout, "request timeout (env OPSY_TIMEOUT)")
	pf.Bool(opsycli.KeyDebug, false, "log HTTP requests and responses to stderr (env OPSY_DEBUG)")
	a.v = opsycli.NewViper(pf)

	root.AddCommand(
		newZoneCommand(a),
		newHostCommand(a),
		newGroupCommand(a),
		newLoginCommand(a),
		newVersionCommand(a),
	)
	addJSONFlag(root)
	return root
}

func (a *App) setup() error {
	settings, err := opsycli.LoadSettings(a.v)
	if err != nil {
		return err
	}
	a.settings = settings

	logger := logrus.New()
	logger.SetOutput(a.Err)
	logger.SetLevel(logrus.WarnLevel)
	if settings.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	a.log = logrus.NewEntry(logger).WithField("component", "opsy")
	return nil
}

// withClient connects on first use and hands the client to fn.
func (a *App) withClient(fn func(cmd *cobra.Command, c *opsyclient.Client, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c, err := a.connect(cmd.Context())
		if err != nil {
			return err
		}
		return fn(cmd, c, args)
	}
}

func (a *App) connect(ctx context.Context) (*opsyclient.Client, error) {
	if a.client != nil {
		return a.client, nil
	}
	s := a.settings
	if s.URL == "" {
		return nil, fmt.Errorf("url is required: set --url, OPSY_URL or url in the config file")
	}

	opts := []opsyclient.Option{
		opsyclient.WithLogger(a.log),
		opsyclient.WithDebug(s.Debug),
		opsyclient.WithTimeout(s.Timeout),
		opsyclient.WithUserAgent("opsy/" + Version),
	}
	if a.HTTPClient != nil {
		opts = append(opts, opsyclient.WithHTTPClient(a.HTTPClient))
	}

	if s.Username != "" {
		password := s.Password
		if password == "" {
			pw, err := a.ReadPassword()
			if errors.Is(err, opsycli.ErrNoTerminal) {
				return nil, &opsyclient.ValidationError{
					Field:  "password",
					Reason: "required when a username is set and stdin is not a terminal",
				}
			}
			if err != nil {
				return nil, err
			}
			password = pw
		}
		opts = append(opts,
			opsyclient.WithCredentials(s.Username, password),
			opsyclient.WithForceRenew(a.forceRenew))
	}

	c, err := opsyclient.New(ctx, s.URL, opts...)
	if err != nil {
		return nil, err
	}
	a.client = c
	return c, nil
}

func printResult(cmd *cobra.Command, v any) error {
	if jsonOutput(cmd) {
		return opsycli.PrintJSON(cmd.OutOrStdout(), v)
	}
	return opsycli.PrintDetail(cmd.OutOrStdout(), v)
}

func printList(cmd *cobra.Command, cols []opsycli.Column, rows any) error {
	if jsonOutput(cmd) {
		return opsycli.PrintJSON(cmd.OutOrStdout(), rows)
	}
	return opsycli.PrintTable(cmd.OutOrStdout(), cols, rows)
}

func printDeleted(cmd *cobra.Command, kind, target string) error {
	if jsonOutput(cmd) {
		return opsycli.PrintJSON(cmd.OutOrStdout(), map[string]string{"deleted": kind, "target": target})
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s '%s'.\n", kind, target)
	return err
}

func jsonOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

// addJSONFlag registers --json on every leaf under parent.
func addJSONFlag(parent *cobra.Command) {
	for _, c := range parent.Commands() {
		if c.HasSubCommands() {
			addJSONFlag(c)
			continue
		}
		c.Flags().Bool("json", false, "output raw JSON")
	}
}
