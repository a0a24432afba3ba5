// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BOXFoundation/repod/cache"
	"github.com/BOXFoundation/repod/log"
	"github.com/BOXFoundation/repod/metrics"
	"github.com/BOXFoundation/repod/persist"
	"github.com/BOXFoundation/repod/storage"
)

////////////////////////////////////////////////////////////////
// build time variants

// Version number of the build
var Version string

// GitCommit id of source code
var GitCommit string

// GitBranch name of source code
var GitBranch string

////////////////////////////////////////////////////////////////

// Config is a configuration data structure for the repod server, which is
// read from config file or parsed from command line.
type Config struct {
	Workspace  string         `mapstructure:"workspace"`
	Log        log.Config     `mapstructure:"log"`
	Database   storage.Config `mapstructure:"database"`
	Repository persist.Config `mapstructure:"repository"`
	Cache      cache.Config   `mapstructure:"cache"`
	Metrics    metrics.Config `mapstructure:"metrics"`
}

var format = `workspace: %s
database: %v
repository: %v
cache capacity: %dMB`

func (c Config) String() string {
	return fmt.Sprintf(format, c.Workspace, c.Database, c.Repository, c.Cache.CapacityMb)
}

// Prepare makes sure the config is correct and all directories are ok.
func (c *Config) Prepare() {
	if c.Workspace == "" {
		c.Workspace = "."
	}
	if err := os.MkdirAll(c.Workspace, 0700); err != nil {
		fmt.Printf("Failed to create workspace %s: %v\n", c.Workspace, err)
		os.Exit(1)
	}

	if c.Database.Name == "" {
		c.Database.Name = "memdb"
	}
	if c.Database.Path == "" {
		c.Database.Path = filepath.Join(c.Workspace, "database")
	}
	if c.Cache.CapacityMb == 0 {
		c.Cache.CapacityMb = 64
	}
}
