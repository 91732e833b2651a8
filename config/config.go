// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BOXFoundation/boxscript/core"
	"github.com/BOXFoundation/boxscript/core/types"
	logtypes "github.com/BOXFoundation/boxscript/log/types"
	"github.com/BOXFoundation/boxscript/metrics"
	"github.com/BOXFoundation/boxscript/script"
)

////////////////////////////////////////////////////////////////
// build time variants

// Version number of the build
var Version string

// GitCommit id of source code
var GitCommit string

// GitBranch name of source code
var GitBranch string

// GoVersion used to build
var GoVersion = runtime.Version()

////////////////////////////////////////////////////////////////

// Config is a configuration data structure for the box script tool,
// which is read from config file or parsed from command line.
type Config struct {
	Workspace string               `mapstructure:"workspace"`
	Network   string               `mapstructure:"network"`
	Log       logtypes.Config      `mapstructure:"log"`
	Script    script.Config        `mapstructure:"script"`
	Validator core.ValidatorConfig `mapstructure:"validator"`
	Metrics   metrics.Config       `mapstructure:"metrics"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Workspace: ".devconfig",
		Network:   "mainnet",
		Log:       logtypes.Config{Level: "error"},
		Script:    script.DefaultConfig(),
		Validator: core.DefaultValidatorConfig(),
		Metrics:   metrics.DefaultConfig(),
	}
}

var format = `workspace: %s
network: %s
log: %v
script: %+v
validator: %+v`

func (c Config) String() string {
	return fmt.Sprintf(format, c.Workspace, c.Network, c.Log, c.Script, c.Validator)
}

// GetLog return log config.
func (c Config) GetLog() logtypes.Config {
	return c.Log
}

// Prepare function makes sure all configurations are correct.
func (c *Config) Prepare() error {
	ws, err := filepath.Abs(c.Workspace)
	if err != nil {
		return err
	}
	c.Workspace = ws // change to abs path

	// check if the network is correct.
	if _, ok := types.NetParams(c.Network); !ok {
		return fmt.Errorf("incorrect network name %s", c.Network)
	}

	// the script policy must parse before anything runs
	if _, err := c.Script.VerificationConfig(); err != nil {
		return err
	}

	// check log file configuration
	for _, hook := range c.Log.Hooks {
		if hook.Name != "file" && hook.Name != "filewithformatter" { // only check file logs
			continue
		}
		filename, ok := hook.Options["filename"]
		if !ok {
			logfile := filepath.Join(c.Workspace, "logs", c.Network, "box.log")
			if err := mkDirAll(filepath.Dir(logfile)); err != nil {
				return err
			}
			hook.Options["filename"] = logfile
		} else if strV, ok := filename.(string); ok {
			if filepath.IsAbs(strV) { // abs dir
				if err := mkDirAll(filepath.Dir(strV)); err != nil {
					return err
				}
				continue
			}
			if strings.Contains(strV, "/") { // incorrect filename
				return fmt.Errorf("incorrect log filename %s", strV)
			}
			if len(strV) == 0 {
				strV = "box.log"
			}
			logfile := filepath.Join(c.Workspace, "logs", c.Network, strV)
			if err := mkDirAll(filepath.Dir(logfile)); err != nil {
				return err
			}
			hook.Options["filename"] = logfile
		}
	}
	return nil
}

func mkDirAll(p string) error {
	return os.MkdirAll(p, 0700)
}
