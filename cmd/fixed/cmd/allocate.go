package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calebcase/fixed"
)

// parseRatios reads a comma separated list of integers.
func parseRatios(s string) ([]int64, error) {
	fields := strings.Split(s, ",")
	ratios := make([]int64, 0, len(fields))

	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		r, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, Error.New("invalid ratio %q: %v", field, err)
		}

		ratios = append(ratios, r)
	}

	return ratios, nil
}

func runAllocate(a *app, cmd *cobra.Command, args []string) error {
	scale := a.v.GetInt32("scale")
	pat := a.v.GetString("pattern")

	ratios, err := parseRatios(a.v.GetString("ratios"))
	if err != nil {
		return err
	}

	f, err := fixed.NewFromString(args[0], scale)
	if err != nil {
		return err
	}

	shares, err := f.Allocate(ratios...)
	if err != nil {
		return err
	}

	a.log.Info("allocated", "value", f, "ratios", ratios, "shares", len(shares))

	w := cmd.OutOrStdout()
	for _, share := range shares {
		out := share.String()
		if pat != "" {
			out, err = share.FormatWith(pat, a.separators())
			if err != nil {
				return err
			}
		}

		_, err = fmt.Fprintln(w, out)
		if err != nil {
			return err
		}
	}

	return nil
}

func allocateCommand(a *app) *cobra.Command {
	allocateCmd := &cobra.Command{
		Use:   "allocate VALUE",
		Short: "Divides a value into shares by ratio without losing minor units",
		Long: `Divides a value into shares by ratio without losing minor units.

Each share is printed on its own line in ratio order. The shares always sum
to VALUE truncated to --scale.`,
		Example: "fixed allocate 100 --ratios 1,1,1",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAllocate(a, cmd, args)
		},
	}

	valueFlags(allocateCmd.Flags(), "")
	allocateCmd.Flags().String("ratios", "", "comma separated non-negative ratios")

	return allocateCmd
}
