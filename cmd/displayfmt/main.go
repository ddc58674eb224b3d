// Command displayfmt formats raw dashboard values from the command line and
// renders batches of them through the pluggable output renderers.
package main

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tradingplatform/display-formatter/internal/config"
	"github.com/tradingplatform/display-formatter/internal/output"
	"github.com/tradingplatform/display-formatter/pkg/display"
)

var (
	profilePath string
	verbose     bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "displayfmt",
		Short:         "Locale-aware display formatting for dashboard values",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	root.PersistentFlags().StringVarP(&profilePath, "profile", "p", "", "formatting profile YAML file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newValueCmd("currency", "Format a number as currency", func(f *display.Formatter, v float64) string { return f.Currency(v) }),
		newValueCmd("percent", "Format a number as a signed percentage", func(f *display.Formatter, v float64) string { return f.Percent(v) }),
		newValueCmd("number", "Format a number with grouping separators", func(f *display.Formatter, v float64) string { return f.Number(v) }),
		newDateCmd(),
		newBatchCmd(),
		newExampleCmd(),
	)
	return root
}

// loadFormatter builds the formatter from --profile, or the default when no
// profile is given.
func loadFormatter() (*display.Formatter, error) {
	if profilePath == "" {
		return display.Default(), nil
	}
	log.Debugf("loading profile from %s", profilePath)
	p, err := config.NewLoader().LoadProfile(profilePath)
	if err != nil {
		return nil, err
	}
	return p.Formatter()
}

func newValueCmd(name, short string, render func(*display.Formatter, float64) string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <value>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadFormatter()
			if err != nil {
				return err
			}
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("not a number: %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), render(f, v))
			return nil
		},
	}
}

func newDateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "date <value>",
		Short: "Format a parseable date string as a human-readable date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadFormatter()
			if err != nil {
				return err
			}
			// Unparseable input prints the invalid-date sentinel, matching
			// the dashboard's behavior; it is not a command failure.
			fmt.Fprintln(cmd.OutOrStdout(), f.Date(args[0]))
			return nil
		},
	}
}

func newBatchCmd() *cobra.Command {
	var format string
	var toFile bool
	cmd := &cobra.Command{
		Use:   "batch <values.yaml>",
		Short: "Render a YAML batch of tagged values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadFormatter()
			if err != nil {
				return err
			}
			set, err := config.NewLoader().LoadValueSet(args[0])
			if err != nil {
				return err
			}
			log.Debugf("loaded %d values from %s", len(set.Values), args[0])

			if toFile {
				return output.Generate(set, f, format)
			}
			data, err := output.Render(set, f, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, csv, json)")
	cmd.Flags().BoolVar(&toFile, "write", false, "write to a timestamped file instead of stdout")
	return cmd
}

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Print an example value batch as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set := config.NewLoader().ExampleValueSet()
			data, err := yaml.Marshal(set)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
