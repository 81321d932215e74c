// File: strata/cmd/strata/main.go

// Command strata renders the effective configuration produced by merging
// layered TOML sources. Useful for debugging which source wins for a key and
// what ${VAR} / file: references resolve to.
package main

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/strataconf/strata"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		files    []string
		required []string
		inline   []string
		dotenv   string
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "strata",
		Short: "Render the merged configuration from layered TOML sources",
		Long: `strata merges TOML sources, resolves ${VAR} and file: references, and
prints the resulting table as TOML.

Sources merge in this order, later groups overriding earlier ones:
optional files (--file), required files (--require), inline documents
(--inline), each group in flag order.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := zerolog.Nop()
			if verbose {
				log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
					With().Timestamp().Logger()
			}

			b := strata.NewBuilder().WithLogger(log)
			if dotenv != "" {
				b = b.AddDotenvFile(dotenv)
			}
			for _, path := range files {
				b = b.AddFile(path)
			}
			for _, path := range required {
				b = b.AddRequiredFile(path)
			}
			for _, doc := range inline {
				b = b.AddTOMLString(doc)
			}

			cfg, err := b.Build()
			if err != nil {
				return err
			}

			return toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg.Table())
		},
	}

	cmd.Flags().StringArrayVarP(&files, "file", "f", nil, "optional TOML file source (repeatable)")
	cmd.Flags().StringArrayVarP(&required, "require", "r", nil, "required TOML file source (repeatable)")
	cmd.Flags().StringArrayVarP(&inline, "inline", "i", nil, "inline TOML document source (repeatable)")
	cmd.Flags().StringVar(&dotenv, "dotenv", "", "load environment variables from a dotenv file first")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log skipped sources and failures to stderr")

	return cmd
}
