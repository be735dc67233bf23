package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/tdl/internal/export"
)

var outputFormat string

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Print a validated program",
	Long: `Compiles a file and prints the validated program. The text format
prints canonical TDL source; json, yaml and toml print a document with the
task names, positions and property values. Use "-" to read from standard
input.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&outputFormat, "format", "f", "text",
		"output format ("+strings.Join(export.Formats(), ", ")+")")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if _, err := export.Get(outputFormat); err != nil {
		return err
	}

	name, source, err := readSource(cmd, args[0])
	if err != nil {
		return err
	}

	result, err := app.compiler.Compile(cmd.Context(), name, source)
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), app.renderer.Render(name, source, err))
		return errReported
	}

	return export.Write(cmd.OutOrStdout(), outputFormat, result.Program)
}
