/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// pairings prints the pairings of a cobr.ai tournament, four lines per
// pairing: left player, left score, right player, right score.
package main

import (
	"io"
	"os"

	"github.com/mikeb26/cobrai-pairings/cobrai"
	"github.com/mikeb26/cobrai-pairings/internal/config"
	"github.com/mikeb26/cobrai-pairings/internal/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	all        bool
	configPath string
	verbose    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		logger.New(stderr, false).Error(err)
		return 1
	}

	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "pairings <tournament-id>",
		Short: "Print the Swiss pairings of a cobr.ai tournament",
		Long: `Fetch the rounds page of a cobr.ai tournament and print every pairing
of its Swiss rounds as four lines: left player, left score, right player and
right score. Use --all to include the pairings of every section.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New(stderr, opts.verbose)
			return runPairings(cmd, cobrai.TournamentID(args[0]), opts, stdout,
				log)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().BoolVar(&opts.all, "all", false,
		"print pairings from every section, not just Swiss")
	cmd.Flags().StringVar(&opts.configPath, "config", "",
		"TOML configuration file")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"enable debug logging")

	return cmd
}

func runPairings(cmd *cobra.Command, id cobrai.TournamentID, opts options,
	stdout io.Writer, log *logrus.Logger) error {

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	client := cobrai.NewClient(cfg, log)
	page, err := client.FetchRounds(cmd.Context(), id)
	if err != nil {
		return err
	}

	mode := cobrai.ModeSwissOnly
	if opts.all {
		mode = cobrai.ModeAll
	}
	log.WithFields(logrus.Fields{
		"tournament": id,
		"mode":       mode,
	}).Debug("extracting pairings")

	return cobrai.EachPairing(page, mode, func(p cobrai.Pairing) error {
		return cobrai.WritePairing(stdout, p)
	})
}
