package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/dhamidi/parsec/calc"
	"github.com/dhamidi/parsec/diag"
)

func newSumCmd() *cobra.Command {
	var outputFormat string
	var color bool

	cmd := &cobra.Command{
		Use:           "sum <expr>",
		Short:         "Parse a single sum such as \"2 + 4\" and print its total",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			source := strings.Join(args, " ")

			sum, err := calc.ParseSum(source)
			if err != nil {
				d := diag.FromError("", err)
				if rerr := diag.Render(cmd.ErrOrStderr(), source, d, diag.Options{Color: color}); rerr != nil {
					return errors.Wrap(rerr, "render diagnostic")
				}
				return renderedError{err}
			}

			switch outputFormat {
			case "text":
				fmt.Fprintln(cmd.OutOrStdout(), sum.Total())
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				result := struct {
					calc.Sum
					Total int64 `json:"total"`
				}{sum, sum.Total()}
				if err := enc.Encode(result); err != nil {
					return errors.Wrap(err, "encode json")
				}
			default:
				return errors.Newf("unknown format: %s", outputFormat)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().BoolVar(&color, "color", false, "colorize diagnostics")

	return cmd
}
