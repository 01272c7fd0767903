package main

import (
	"fmt"
	"io"

	"github.com/lerenn/depub/cmd/depub/internal/cli"
	"github.com/lerenn/depub/pkg/config"
	"github.com/spf13/cobra"
)

// createRootCmd builds the depub command. helpShown is set when the usage was
// printed on request.
func createRootCmd(stdout, stderr io.Writer, helpShown *bool) *cobra.Command {
	var opts cli.Options

	rootCmd := &cobra.Command{
		Use:   "depub -c <command> [flags] <file>...",
		Short: "Minimize visibility annotations under an external check",
		Long: `depub demotes every pub annotation of the given files to the most restrictive ` +
			`level for which the check command still succeeds, and repeats until nothing changes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Files = args

			cfg, files, err := cli.Resolve(config.NewManager(nil), opts, cmd.Flags().Changed)
			if err != nil {
				return err
			}

			d, flush, err := cli.NewDepub(cli.NewDepubParams{Config: cfg, Stdout: stdout})
			if err != nil {
				return err
			}
			defer flush()

			_, err = d.Run(cmd.Context(), files)
			return err
		},
	}

	rootCmd.SetOut(stderr)
	rootCmd.SetErr(stderr)
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		*helpShown = true
		fmt.Fprint(stderr, cmd.UsageString())
	})
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	})

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.Command, cli.FlagCommand, "c", "", "Shell command that accepts a candidate by exiting 0")
	flags.StringVar(&opts.ConfigPath, cli.FlagConfig, "", "Load options from a YAML config file")
	flags.IntVar(&opts.MaxRounds, cli.FlagMaxRounds, 0, "Stop after this many rounds (0 means until fixpoint)")
	flags.BoolVarP(&opts.Verbose, cli.FlagVerbose, "v", false, "Log every trial to stderr")
	flags.BoolVarP(&opts.Quiet, cli.FlagQuiet, "q", false, "Suppress progress output")
	flags.BoolVar(&opts.NoColor, cli.FlagNoColor, false, "Disable colored output")

	return rootCmd
}
