// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	asciiLogo := `
██████╗ ███████╗████████╗     ██████╗ ██╗   ██╗███████╗███████╗███████╗███████╗██████╗
██╔══██╗██╔════╝╚══██╔══╝    ██╔════╝ ██║   ██║██╔════╝██╔════╝██╔════╝██╔════╝██╔══██╗
██████╔╝███████╗   ██║       ██║  ███╗██║   ██║█████╗  ███████╗███████╗█████╗  ██████╔╝
██╔══██╗╚════██║   ██║       ██║   ██║██║   ██║██╔══╝  ╚════██║╚════██║██╔══╝  ██╔══██╗
██████╔╝███████║   ██║       ╚██████╔╝╚██████╔╝███████╗███████║███████║███████╗██║  ██║
╚═════╝ ╚══════╝   ╚═╝        ╚═════╝  ╚═════╝ ╚══════╝╚══════╝╚══════╝╚══════╝╚═╝  ╚═╝
Guess the shape of an eagerly rebalanced binary search tree [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	InitializeColors()
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var configPath string

	// setup loads the configuration and a logger carried in the returned context
	setup := func() (context.Context, *Config, func()) {
		config, err := LoadConfig(configPath)
		if err != nil {
			log.Printf("Failed to load configuration: %v. Using default settings.", err)
		}

		logger, err := NewLogger(config.Log)
		if err != nil {
			log.Printf("Failed to open log file: %v. Logging is disabled.", err)
			logger = zap.NewNop().Sugar()
		}
		ctx := WithLogger(context.Background(), logger)
		return ctx, config, func() { _ = logger.Sync() }
	}

	play := func(cmd *cobra.Command, args []string) {
		ctx, config, done := setup()
		defer done()

		var stats *StatsStore
		if config.Stats.Enabled {
			var err error
			stats, err = OpenStats(ctx, config.Stats.Path)
			if err != nil {
				log.Printf("Failed to open statistics: %v. Rounds will not be saved.", err)
			} else {
				defer stats.Close(ctx)
			}
		}

		if err := runBubbleTeaApp(ctx, config, stats); err != nil {
			log.Fatalf("Error running game: %v", err)
		}
	}

	var cmdPlay = &cobra.Command{
		Use:   "play",
		Short: "Launches the BST Guesser game",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Play builds a random tree and asks you to find keys by clicking its hidden nodes`),
		Args:  cobra.MinimumNArgs(0),
		Run:   play,
	}

	var cmdTrace = &cobra.Command{
		Use:   "trace <keys...>",
		Short: "Print every rebalance step of an insertion sequence",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Trace inserts the given keys in order (comma or space separated) and prints\nthe checks run on the way back to the root after each insertion"),
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			keys, err := parseKeys(args)
			if err != nil {
				log.Fatalf("Error parsing keys: %v", err)
			}
			if err := writeTrace(os.Stdout, keys); err != nil {
				log.Fatalf("Error writing trace: %v", err)
			}
		},
	}

	var cmdStress = &cobra.Command{
		Use:   "stress",
		Short: "Insert random sequences and count rejected keys",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Stress builds many random trees concurrently and reports how often an\ninsertion is rejected because a rotation found no grandchild to promote"),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			ctx, config, done := setup()
			defer done()

			opts := StressOptions{Size: config.Game.TreeSize, MinKey: config.Game.MinKey, MaxKey: config.Game.MaxKey}
			opts.Runs, _ = cmd.Flags().GetInt("runs")
			opts.Workers, _ = cmd.Flags().GetInt("workers")
			if cmd.Flags().Changed("size") {
				opts.Size, _ = cmd.Flags().GetInt("size")
			}
			if cmd.Flags().Changed("min") {
				opts.MinKey, _ = cmd.Flags().GetInt("min")
			}
			if cmd.Flags().Changed("max") {
				opts.MaxKey, _ = cmd.Flags().GetInt("max")
			}

			bar := progressbar.Default(int64(opts.Runs), "inserting")
			report, err := runStress(ctx, opts, fastDraw, func() { _ = bar.Add(1) })
			if err != nil {
				log.Fatalf("Error running stress: %v", err)
			}
			_ = bar.Finish()

			fmt.Printf("\n%sruns%s            %d\n", Info, Reset, report.Runs)
			fmt.Printf("%sfailed runs%s     %d (%.1f%%)\n", Info, Reset, report.FailedRuns, report.FailureRate()*100)
			fmt.Printf("%srejected keys%s   %d\n", Info, Reset, report.Rejected)
			fmt.Printf("%saccepted keys%s   %d\n", Info, Reset, report.Accepted)
			fmt.Printf("%sdropped nodes%s   %d\n", Info, Reset, report.Lost)
			if report.FirstFailure != nil {
				fmt.Printf("%sfirst failure%s   %v\n", Warning, Reset, report.FirstFailure)
			}
		},
	}

	cmdStress.Flags().Int("runs", 1000, "number of random trees to build")
	cmdStress.Flags().Int("workers", 4, "number of trees built concurrently")
	cmdStress.Flags().Int("size", 0, "keys inserted per tree (defaults to game.tree_size)")
	cmdStress.Flags().Int("min", 0, "smallest key (defaults to game.min_key)")
	cmdStress.Flags().Int("max", 0, "largest key (defaults to game.max_key)")

	var cmdStats = &cobra.Command{
		Use:   "stats",
		Short: "Print statistics of past rounds",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Stats summarizes the rounds stored in the statistics file"),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			ctx, config, done := setup()
			defer done()

			store, err := OpenStats(ctx, config.Stats.Path)
			if err != nil {
				log.Fatalf("Error opening statistics: %v", err)
			}
			defer store.Close(ctx)

			limit, _ := cmd.Flags().GetInt("limit")
			if err := printStats(ctx, store, limit); err != nil {
				log.Fatalf("Error reading statistics: %v", err)
			}
		},
	}

	cmdStats.Flags().Int("limit", 10, "number of recent rounds to list")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Display current configuration settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Settings prints the effective configuration and creates the default file when missing"),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			_, config, done := setup()
			defer done()
			displaySettings(config)
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print BST Guesser usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the BST Guesser CLI usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print BST Guesser version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "bstguesser",
		Version: version,
		Long:    asciiLogo,
		// Default to play when no subcommand is provided
		Run: play,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.bstguesser.yaml)")
	rootCmd.AddCommand(cmdPlay, cmdTrace, cmdStress, cmdStats, cmdSettings, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
