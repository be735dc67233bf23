package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/tdl/foundation/core/log"
	"github.com/msto63/tdl/internal/catalog"
	"github.com/msto63/tdl/internal/catalog/store"
)

var (
	indexDB    string
	indexWatch bool
)

var indexCmd = &cobra.Command{
	Use:   "index DIR",
	Short: "Store validated tasks in a SQLite index",
	Long: `Compiles every file in DIR and writes the tasks of the valid files to
a SQLite database. Files that fail to compile are reported and removed from
the index. With --watch the index follows changes until Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().StringVar(&indexDB, "db", "", "index database (default: [index] path from config)")
	indexCmd.Flags().BoolVarP(&indexWatch, "watch", "w", false, "keep the index current while files change")
	rootCmd.AddCommand(indexCmd)
}

// openIndex opens the database named by --db, the settings or the default
func openIndex() (*store.SQLiteIndexStore, error) {
	cfg := store.DefaultIndexConfig()
	if app.settings.Index.Path != "" {
		cfg.Path = app.settings.Index.Path
	}
	if indexDB != "" {
		cfg.Path = indexDB
	}
	return store.NewSQLiteIndexStore(cfg)
}

// syncEntry writes one catalog entry to the index
func syncEntry(ctx context.Context, idx store.IndexStore, entry *catalog.Entry) (int, error) {
	if !entry.Valid() {
		_, err := idx.RemoveFile(ctx, entry.Path)
		return 0, err
	}
	return idx.IndexFile(ctx, entry.Path, entry.RunID, entry.Program)
}

func runIndex(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	idx, err := openIndex()
	if err != nil {
		return err
	}
	defer idx.Close()

	loader, err := newCatalog(args[0])
	if err != nil {
		return err
	}
	if _, err := loader.LoadAll(ctx); err != nil {
		return err
	}

	failed, indexed := 0, 0
	for _, entry := range loader.All() {
		if !entry.Valid() {
			report(cmd, entry)
			failed++
		}
		n, err := syncEntry(ctx, idx, entry)
		if err != nil {
			return err
		}
		indexed += n
	}
	fmt.Fprintf(cmd.OutOrStdout(), "indexed %d tasks from %d files\n", indexed, len(loader.All())-failed)

	if !indexWatch {
		if failed > 0 {
			return fmt.Errorf("%d files failed: %w", failed, errReported)
		}
		return nil
	}

	loader.SetOnChange(func(entry *catalog.Entry) {
		report(cmd, entry)
		if _, err := syncEntry(ctx, idx, entry); err != nil {
			app.logger.LogError(err)
		}
	})
	loader.SetOnDelete(func(path string) {
		removed, err := idx.RemoveFile(ctx, path)
		if err != nil {
			app.logger.LogError(err)
			return
		}
		app.logger.Info("File removed from index", mdwlog.Fields{"file": path, "tasks": removed})
	})

	if err := loader.StartWatching(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	loader.Stop()
	return nil
}
