// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/BOXFoundation/boxscript/core"
	"github.com/BOXFoundation/boxscript/script"
	"github.com/facebookgo/ensure"
	mate "github.com/heralight/logrus_mate"
)

func TestPrepare(t *testing.T) {
	dir, err := ioutil.TempDir("", "boxscript")
	ensure.Nil(t, err)
	defer os.RemoveAll(dir)

	cfg := Default()
	cfg.Workspace = dir
	cfg.Network = "testnet"
	cfg.Log.Hooks = []mate.HookConfig{
		{Name: "file", Options: map[string]interface{}{}},
		{Name: "filewithformatter", Options: map[string]interface{}{"filename": "verify.log"}},
	}
	ensure.Nil(t, cfg.Prepare())

	ensure.DeepEqual(t, cfg.Log.Hooks[0].Options["filename"], filepath.Join(dir, "logs", "testnet", "box.log"))
	ensure.DeepEqual(t, cfg.Log.Hooks[1].Options["filename"], filepath.Join(dir, "logs", "testnet", "verify.log"))
	_, err = os.Stat(filepath.Join(dir, "logs", "testnet"))
	ensure.Nil(t, err)
}

func TestPrepareErrors(t *testing.T) {
	dir, err := ioutil.TempDir("", "boxscript")
	ensure.Nil(t, err)
	defer os.RemoveAll(dir)

	cfg := Default()
	cfg.Workspace = dir
	cfg.Network = "nonet"
	ensure.NotNil(t, cfg.Prepare())

	cfg = Default()
	cfg.Workspace = dir
	cfg.Script.SigEncoding = "sloppy"
	ensure.NotNil(t, cfg.Prepare())

	cfg = Default()
	cfg.Workspace = dir
	cfg.Log.Hooks = []mate.HookConfig{
		{Name: "file", Options: map[string]interface{}{"filename": "sub/box.log"}},
	}
	ensure.NotNil(t, cfg.Prepare())
}

func TestDefault(t *testing.T) {
	cfg := Default()
	ensure.DeepEqual(t, cfg.Script, script.DefaultConfig())
	ensure.DeepEqual(t, cfg.Validator, core.DefaultValidatorConfig())
	ensure.False(t, cfg.Metrics.Enable)

	vcfg, err := cfg.Script.VerificationConfig()
	ensure.Nil(t, err)
	ensure.DeepEqual(t, vcfg, script.DefaultVerificationConfig())
}
