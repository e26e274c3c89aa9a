package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coverkit/cmcdc/internal/mcdc"
	"github.com/coverkit/cmcdc/internal/report"
	"github.com/coverkit/cmcdc/internal/types"
)

var tableJSONOutput bool

var tableCmd = &cobra.Command{
	Use:   "table <expression>",
	Short: "Print the MC/DC truth table for a single decision expression",
	Long: `Derives the MC/DC pattern set for one C boolean expression without
reading any source file. Useful for spot checks:
  cmcdc table 'a || (b && c)'`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		expr := strings.Join(args, " ")
		res := mcdc.NewGenerator(logger).Generate(expr)

		table := report.Build(types.Decision{
			Kind: types.KindIf,
			Expr: expr,
			Line: 1,
		}, res)

		if tableJSONOutput {
			d, err := json.MarshalIndent(table, "", "  ")
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(string(d))
			return
		}
		if err := report.WriteText(os.Stdout, []report.Table{table}); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	tableCmd.Flags().BoolVar(&tableJSONOutput, "json", false, "output the table in JSON format")
}
