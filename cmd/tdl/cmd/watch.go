package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/msto63/tdl/internal/catalog"
	"github.com/msto63/tdl/pkg/core/logging"
)

var watchCmd = &cobra.Command{
	Use:   "watch DIR",
	Short: "Compile a directory and recompile files as they change",
	Long: `Compiles every file with the configured extension (default .tdl) in
DIR, prints the result for each, then keeps watching the directory and
recompiles files when they are written. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// newCatalog creates a loader configured from the settings
func newCatalog(dir string) (*catalog.Loader, error) {
	return catalog.NewLoader(dir, catalog.Options{
		Compiler:  app.compiler,
		Logger:    logging.Wrap(app.logger.WithName("catalog")),
		Extension: app.settings.Watch.Extension,
		Debounce:  app.settings.Watch.Debounce,
	})
}

// report prints the result of one catalog entry
func report(cmd *cobra.Command, entry *catalog.Entry) {
	if entry.Valid() {
		fmt.Fprint(cmd.OutOrStdout(), app.renderer.OK(entry.Path, entry.TaskCount()))
		return
	}
	fmt.Fprint(cmd.ErrOrStderr(), app.renderer.Render(entry.Path, entry.Source, entry.Err))
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loader, err := newCatalog(args[0])
	if err != nil {
		return err
	}

	if _, err := loader.LoadAll(ctx); err != nil {
		return err
	}
	for _, entry := range loader.All() {
		report(cmd, entry)
	}

	loader.SetOnChange(func(entry *catalog.Entry) {
		report(cmd, entry)
	})
	loader.SetOnDelete(func(path string) {
		fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", path)
	})

	if err := loader.StartWatching(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	loader.Stop()

	stats := loader.Stats()
	fmt.Fprintf(cmd.OutOrStdout(), "%d files, %d invalid, %d tasks\n", stats.Files, stats.Invalid, stats.Tasks)
	return nil
}
