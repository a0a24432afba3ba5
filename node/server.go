// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package node

import (
	"os"
	"runtime"
	"sync"

	"github.com/BOXFoundation/repod/cache"
	config "github.com/BOXFoundation/repod/config"
	"github.com/BOXFoundation/repod/eventbus"
	"github.com/BOXFoundation/repod/log"
	"github.com/BOXFoundation/repod/metrics"
	"github.com/BOXFoundation/repod/persist"
	kvpersist "github.com/BOXFoundation/repod/persist/kv"
	storage "github.com/BOXFoundation/repod/storage"
	_ "github.com/BOXFoundation/repod/storage/memdb" // init memdb
	"github.com/jbenet/goprocess"
	"github.com/spf13/viper"
)

var logger = log.NewLogger("node") // logger for node package

// nodeServer is the repod server instance, which contains the database, the
// cache backend and the caching persistence of the served repository.
var nodeServer = struct {
	sm   sync.Mutex
	proc goprocess.Process

	cfg      config.Config
	database *storage.Database
	backend  cache.CacheBackend
	persist  persist.Persist
}{
	proc: goprocess.WithSignals(os.Interrupt),
}

// Start function starts node server.
func Start(v *viper.Viper) error {
	runtime.GOMAXPROCS(runtime.NumCPU())

	var proc = nodeServer.proc // parent goprocess
	var cfg = &nodeServer.cfg
	// init config object from viper
	if err := v.Unmarshal(cfg); err != nil {
		logger.Fatal("Failed to read cfg ", err) // exit in case of cfg error
	}

	cfg.Prepare() // make sure the cfg is correct and all directories are ok.

	log.Setup(&cfg.Log) // setup logger

	// start database life cycle
	var database, err = storage.NewDatabase(proc, &cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to initialize database: %v", err) // exit in case of error during initialization of database
	}
	nodeServer.database = database

	// the cache backend multiplexes every repository of this process
	cfg.Cache.Bus = eventbus.Default()
	backend := cache.New(&cfg.Cache)
	nodeServer.backend = backend

	p, err := kvpersist.NewPersist(database, &cfg.Repository)
	if err != nil {
		logger.Fatalf("Failed to open repository %s: %v", cfg.Repository.RepositoryID, err)
	}
	nodeServer.persist = backend.Wrap(p)

	metrics.Run(&cfg.Metrics)

	logger.Infof("Repod server started. %s", cfg)

	select {
	case <-proc.Closing():
		logger.Info("Repod server is shutting down...")
	}
	select {
	case <-proc.Closed():
		logger.Info("Repod server is down.")
	}
	return nil
}

// Stop closes the server process.
func Stop() {
	nodeServer.sm.Lock()
	defer nodeServer.sm.Unlock()
	nodeServer.proc.Close()
}

// Persist returns the caching persistence of the served repository.
func Persist() persist.Persist {
	nodeServer.sm.Lock()
	defer nodeServer.sm.Unlock()
	return nodeServer.persist
}
