package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/msto63/tdl/internal/catalog/store"
)

var (
	queryFilter store.TaskFilter
	queryJSON   bool
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "List tasks from the index",
	Long: `Lists indexed tasks, highest priority first and then by earliest
deadline.`,
	Args: cobra.NoArgs,
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVar(&indexDB, "db", "", "index database (default: [index] path from config)")
	queryCmd.Flags().StringVar(&queryFilter.File, "file", "", "only tasks from this file")
	queryCmd.Flags().StringVar(&queryFilter.Name, "name", "", "only tasks with this name")
	queryCmd.Flags().Int64Var(&queryFilter.MinPriority, "min-priority", 0, "only tasks with at least this priority")
	queryCmd.Flags().Int64Var(&queryFilter.MaxDeadline, "max-deadline", 0, "only tasks due within this deadline")
	queryCmd.Flags().IntVarP(&queryFilter.Limit, "limit", "n", 0, "maximum number of tasks")
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "print JSON")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	idx, err := openIndex()
	if err != nil {
		return err
	}
	defer idx.Close()

	records, err := idx.Query(cmd.Context(), queryFilter)
	if err != nil {
		return err
	}

	if queryJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if records == nil {
			records = []*store.TaskRecord{}
		}
		return enc.Encode(records)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRIORITY\tDEADLINE\tTASK\tLOCATION")
	for _, r := range records {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s:%d:%d\n", r.Priority, r.Deadline, r.Name, r.File, r.Line, r.Column)
	}
	return w.Flush()
}
