// Package cmd implements the fixed command line.
package cmd

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/zeebo/errs"

	"github.com/calebcase/fixed/pattern"
)

// Error is the class of errors raised by the command line itself.
var Error = errs.Class("fixed")

// app is the state shared by the commands of one invocation.
type app struct {
	v   *viper.Viper
	log *slog.Logger
}

func (a *app) separators() pattern.Separators {
	return pattern.Choose(a.v.GetBool("invert"))
}

// Main returns the root command.
func Main() *cobra.Command {
	a := &app{
		v:   viper.New(),
		log: slog.New(slog.DiscardHandler),
	}

	a.v.SetEnvPrefix("FIXED")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:          "fixed",
		Short:        "Format, parse and allocate fixed point numbers",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			err := a.v.BindPFlags(cmd.Flags())
			if err != nil {
				return Error.Wrap(err)
			}

			a.log, err = newLogger(cmd.ErrOrStderr(), a.v.GetString("log-level"))

			return err
		},
		Run: func(cmd *cobra.Command, _ []string) { cmd.Help() },
	}

	RegisterFlags(rootCmd)

	rootCmd.AddCommand(formatCommand(a))
	rootCmd.AddCommand(parseCommand(a))
	rootCmd.AddCommand(allocateCommand(a))

	return rootCmd
}

// RegisterFlags installs the persistent flags on the root command.
func RegisterFlags(rootCmd *cobra.Command) {
	fs := rootCmd.PersistentFlags()

	fs.String("log-level", "warn", "minimum logging level: debug, info, warn or error")
	fs.Bool("invert", false, "use ',' as the decimal separator and '.' for grouping")
}

// valueFlags installs the flags shared by the value commands.
func valueFlags(fs *pflag.FlagSet, pat string) {
	fs.Int32("scale", 2, "number of fractional digits")
	fs.String("pattern", pat, "display pattern, e.g. #,##0.00")
}
