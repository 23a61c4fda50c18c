// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// opsy is the command line client of the Opsy inventory service.
//
// The API surface is read from the server's Swagger document at startup, so
// every command validates its input against the schema the server publishes.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/opsy/opsyclient/cmd/opsy/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cmd.NewApp().Run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
