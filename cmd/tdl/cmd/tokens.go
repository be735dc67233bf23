package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/tdl/foundation/core/log"
	"github.com/msto63/tdl/foundation/tdl/parser"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE",
	Short: "Print the token stream of a file",
	Long: `Prints every token the lexer produces up to end of input, with its
line:column position, type and text. Unknown characters are listed as
UNKNOWN tokens; no parsing or validation takes place.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	name, source, err := readSource(cmd, args[0])
	if err != nil {
		return err
	}

	logger := app.logger.WithField("source", name)
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, tok := range parser.NewLexer(source).Tokenize() {
		logger.Trace("Token", mdwlog.Fields{
			"type":   tok.Type.String(),
			"value":  tok.Value,
			"line":   tok.Line,
			"column": tok.Column,
		})
		fmt.Fprintf(w, "%d:%d\t%s\t%q\n", tok.Line, tok.Column, tok.Type, tok.Value)
	}
	return w.Flush()
}
