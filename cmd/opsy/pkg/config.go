// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package opsycli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every setting name to form its environment variable.
const EnvPrefix = "OPSY"

// Setting keys, shared by flags, environment and the config file.
const (
	KeyConfig   = "config"
	KeyURL      = "url"
	KeyUsername = "username"
	KeyPassword = "password"
	KeyTimeout  = "timeout"
	KeyDebug    = "debug"
)

// Settings is the resolved connection configuration of one invocation.
type Settings struct {
	ConfigPath string
	URL        string
	Username   string
	Password   string
	Timeout    time.Duration
	Debug      bool
}

// ConfigPath returns the default config file path.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "opsy.yaml")
	}
	return filepath.Join(home, ".config", "opsy.yaml")
}

// NewViper returns a viper instance bound to the given flags and to the
// OPSY_* environment. Flags win over the environment, which wins over the
// config file.
func NewViper(flags *pflag.FlagSet) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault(KeyConfig, ConfigPath())
	v.SetDefault(KeyTimeout, 30*time.Second)

	for _, key := range []string{KeyConfig, KeyURL, KeyUsername, KeyPassword, KeyTimeout, KeyDebug} {
		if f := flags.Lookup(key); f != nil {
			_ = v.BindPFlag(key, f)
		}
	}
	return v
}

// LoadSettings reads the config file named by the config setting, when it
// exists, and resolves the connection settings.
func LoadSettings(v *viper.Viper) (*Settings, error) {
	path := v.GetString(KeyConfig)
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	return &Settings{
		ConfigPath: path,
		URL:        v.GetString(KeyURL),
		Username:   v.GetString(KeyUsername),
		Password:   v.GetString(KeyPassword),
		Timeout:    v.GetDuration(KeyTimeout),
		Debug:      v.GetBool(KeyDebug),
	}, nil
}
