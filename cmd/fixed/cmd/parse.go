package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebcase/fixed"
)

func runParse(a *app, cmd *cobra.Command, args []string) error {
	scale := a.v.GetInt32("scale")
	pat := a.v.GetString("pattern")
	invert := a.v.GetBool("invert")

	f, err := fixed.Parse(args[0], pat, scale, invert)
	if err != nil {
		return err
	}

	a.log.Info("parsed", "input", args[0], "pattern", pat, "invert", invert, "value", f)

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", f, f.MinorUnits())

	return err
}

func parseCommand(a *app) *cobra.Command {
	parseCmd := &cobra.Command{
		Use:   "parse TEXT",
		Short: "Reads text written in a display pattern",
		Long: `Reads text written in a display pattern.

Prints the value in its default form followed by its minor units, separated
by a tab.`,
		Example: "fixed parse '1.234,56' --pattern '#.##0,00' --invert",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(a, cmd, args)
		},
	}

	valueFlags(parseCmd.Flags(), "#,##0.00")

	return parseCmd
}
