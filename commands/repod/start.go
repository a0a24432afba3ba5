// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package repod

import (
	"github.com/BOXFoundation/repod/node"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// startCmd runs the repod server until interrupted.
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the repod server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := node.Start(viper.GetViper()); err != nil {
			logger.Fatalf("Failed to start server: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
