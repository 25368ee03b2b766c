// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/algorand/go-deposit-ledger/util/codecs"
)

// ConfigFilename is the name of the config.json file where we store per-data-directory settings
const ConfigFilename = "config.json"

// LedgerFilenamePrefix is the prefix of the account store inside the data directory
const LedgerFilenamePrefix = "ledger"

// LockFilename guards a data directory against concurrent banks
const LockFilename = "ledger.lock"

// LogFilename is the live log file inside the data directory
const LogFilename = "depositctl.log"

// LogArchiveFilename receives the live log file once it is full
const LogArchiveFilename = "depositctl.archive.log"

// LoadConfigFromDisk returns a Local config structure based on merging the defaults
// with settings loaded from the config file from the custom dir. Environment
// overrides are applied last. If the custom file cannot be loaded, the default
// config is returned (with the error from loading the custom file).
func LoadConfigFromDisk(custom string) (c Local, err error) {
	return loadConfigFromFile(filepath.Join(custom, ConfigFilename))
}

func loadConfigFromFile(configFile string) (c Local, err error) {
	c, err = mergeConfigFromFile(configFile, defaultLocal)
	if err != nil {
		return
	}
	err = applyEnvOverrides(&c)
	return
}

// LoadConfigOrDefault loads the config from custom, falling back to the
// defaults (with environment overrides) when no config file exists.
func LoadConfigOrDefault(custom string) (Local, error) {
	c, err := LoadConfigFromDisk(custom)
	if err == nil {
		return c, nil
	}
	if !os.IsNotExist(err) {
		return c, err
	}
	c = defaultLocal
	err = applyEnvOverrides(&c)
	return c, err
}

// GetDefaultLocal returns a copy of the current defaultLocal config
func GetDefaultLocal() Local {
	return defaultLocal
}

func mergeConfigFromFile(configpath string, source Local) (Local, error) {
	f, err := os.Open(configpath)
	if err != nil {
		return source, err
	}
	defer f.Close()

	err = loadConfig(f, &source)
	return source, err
}

func loadConfig(reader io.Reader, config *Local) error {
	dec := json.NewDecoder(reader)
	return dec.Decode(config)
}

func applyEnvOverrides(config *Local) error {
	if err := env.Parse(config); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// SaveToDisk writes the non-default Local settings into a root/ConfigFilename file
func (cfg Local) SaveToDisk(root string) error {
	configpath := filepath.Join(root, ConfigFilename)
	filename := os.ExpandEnv(configpath)
	return cfg.SaveToFile(filename)
}

// SaveToFile saves the config to a specific filename, allowing overriding the default name
func (cfg Local) SaveToFile(filename string) error {
	var alwaysInclude []string
	alwaysInclude = append(alwaysInclude, "Version")
	return codecs.SaveNonDefaultValuesToFile(filename, cfg, defaultLocal, alwaysInclude, true)
}

// LedgerPath returns the path of the account store inside root.
func (cfg Local) LedgerPath(root string) string {
	return filepath.Join(root, LedgerFilenamePrefix)
}
