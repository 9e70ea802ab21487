package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/parsec/calc"
	"github.com/dhamidi/parsec/diag"
)

func newCheckCmd() *cobra.Command {
	var color bool
	var quiet bool

	cmd := &cobra.Command{
		Use:           "check <file>...",
		Short:         "Parse files of sums and report the first error in each",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := commonlog.GetLogger("parsec.check")
			failed := 0

			for _, filename := range args {
				data, err := os.ReadFile(filename)
				if err != nil {
					return errors.Wrapf(err, "read %s", filename)
				}
				source := string(data)

				sums, err := calc.ParseDocument(source)
				log.Debugf("%s: %d sums", filename, len(sums))

				if !quiet {
					for _, sum := range sums {
						fmt.Fprintf(cmd.OutOrStdout(), "%s:%s: %s = %d\n",
							filename, sum.Range.Start, sum.Target, sum.Target.Total())
					}
				}

				if err != nil {
					failed++
					d := diag.FromError(filename, err)
					if rerr := diag.Render(cmd.ErrOrStderr(), source, d, diag.Options{Color: color}); rerr != nil {
						return errors.Wrap(rerr, "render diagnostic")
					}
				}
			}

			if failed > 0 {
				return errors.Newf("%d of %d files failed to parse", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&color, "color", false, "colorize diagnostics")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only report errors")

	return cmd
}
