package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Validate TDL files",
	Long: `Parses and validates each file and prints either "ok" with the task
count or a diagnostic pointing at the first error. Use "-" to read from
standard input.

The exit status is 1 if any file fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		name, source, err := readSource(cmd, path)
		if err != nil {
			fmt.Fprint(cmd.ErrOrStderr(), app.renderer.Render(name, "", err))
			failed++
			continue
		}

		result, err := app.compiler.Compile(cmd.Context(), name, source)
		if err != nil {
			fmt.Fprint(cmd.ErrOrStderr(), app.renderer.Render(name, source, err))
			failed++
			continue
		}

		fmt.Fprint(cmd.OutOrStdout(), app.renderer.OK(name, len(result.Program.Tasks)))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed: %w", failed, len(args), errReported)
	}
	return nil
}
