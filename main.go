package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"

	"potion-brewer/assets"
	"potion-brewer/internal/game"

	"github.com/spf13/cobra"
)

var (
	catalogFile string
	startLevel  int
	logLevel    string
	recordBrews bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "potion-brewer",
		Short:        "Brew potions for the customers of a small alchemy shop",
		SilenceUsage: true,
		RunE:         runPlay,
	}
	root.PersistentFlags().StringVar(&catalogFile, "catalog", "", "JSON catalog replacing the built-in ingredients and levels")
	root.Flags().IntVar(&startLevel, "level", 1, "level to start on (1-indexed)")
	root.Flags().StringVar(&logLevel, "log-level", "info", "log level for the debug log in the data directory")
	root.Flags().BoolVar(&recordBrews, "record-brews", true, "append every brew to brews.jsonl in the data directory")

	root.AddCommand(levelsCmd(), ingredientsCmd())
	return root
}

func runPlay(cmd *cobra.Command, args []string) error {
	catalog, err := assets.LoadCatalog(catalogFile)
	if err != nil {
		return err
	}
	if startLevel < 1 || startLevel > catalog.LevelCount() {
		return fmt.Errorf("--level must be between 1 and %d", catalog.LevelCount())
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q", logLevel)
	}

	// The terminal belongs to the game, so diagnostics go to a file.
	logOut, closeLog := openDebugLog()
	defer closeLog()
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: lvl}))

	g, err := game.New(catalog, game.Options{
		Player:      os.Getenv("USER"),
		StartLevel:  startLevel - 1,
		Logger:      logger,
		RecordBrews: recordBrews,
	})
	if err != nil {
		return err
	}
	return g.Run()
}

// openDebugLog opens debug.log in the data directory, or discards output
// when that is not possible.
func openDebugLog() (io.Writer, func()) {
	dir, err := game.DataDir()
	if err == nil {
		err = os.MkdirAll(dir, 0o755)
	}
	if err != nil {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}

func levelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List the customer requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := assets.LoadCatalog(catalogFile)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "LEVEL\tTARGET\tREQUEST")
			for i := range catalog.LevelCount() {
				lv, _ := catalog.Level(i)
				fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, lv.Target, lv.Problem)
			}
			return tw.Flush()
		},
	}
}

func ingredientsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingredients",
		Short: "List the shelf",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := assets.LoadCatalog(catalogFile)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tFORMULA")
			for _, ing := range catalog.Ingredients() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", ing.ID, ing.Name, ing.Formula)
			}
			return tw.Flush()
		},
	}
}
