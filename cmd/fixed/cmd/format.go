package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebcase/fixed"
)

func runFormat(a *app, cmd *cobra.Command, args []string) error {
	scale := a.v.GetInt32("scale")
	pat := a.v.GetString("pattern")

	f, err := fixed.NewFromString(args[0], scale)
	if err != nil {
		return err
	}

	a.log.Debug("value", "input", args[0], "scale", scale, "units", f.MinorUnits())

	out := f.String()
	if pat != "" {
		out, err = f.FormatWith(pat, a.separators())
		if err != nil {
			return err
		}
	}

	a.log.Info("formatted", "pattern", pat, "output", out)

	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

	return err
}

func formatCommand(a *app) *cobra.Command {
	formatCmd := &cobra.Command{
		Use:   "format VALUE",
		Short: "Renders a decimal value through a display pattern",
		Long: `Renders a decimal value through a display pattern.

VALUE is a plain decimal number (e.g. -1234.5). It is truncated to --scale
fractional digits before formatting. Without --pattern the default form is
printed.`,
		Example: "fixed format -- -1234.5 --pattern '#,##0.00'",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(a, cmd, args)
		},
	}

	valueFlags(formatCmd.Flags(), "")

	return formatCmd
}
