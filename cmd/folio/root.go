package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/kjaer/folio/pkg/app"
	"github.com/kjaer/folio/pkg/config"
	"github.com/kjaer/folio/pkg/data"
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "A terminal book reader",
	Long:  "Read plain-text books in your terminal, with bookmarks, themes and reading progress that survive restarts",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, repo := mustOpen()
		defer repo.Close()

		seedIfEmpty(repo)

		a := app.NewApp(repo, cfg)
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(bookmarksCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// mustOpen loads the config and opens the library database, exiting on
// failure. Shared by every subcommand.
func mustOpen() (*config.Config, *data.Repository) {
	path, err := config.DefaultPath()
	if err != nil {
		log.Fatal(err)
	}
	cfg, err := config.LoadOrCreate(path)
	if err != nil {
		log.Fatal(err)
	}
	return cfg, data.OpenRepository(cfg.Library.DatabasePath)
}

func seedIfEmpty(repo *data.Repository) {
	books, err := repo.ListBooks()
	if err != nil || len(books) > 0 {
		return
	}
	book, chapters := data.SampleBook()
	if err := repo.SaveBook(book); err != nil {
		return
	}
	for _, ch := range chapters {
		if err := repo.SaveChapter(ch); err != nil {
			log.Printf("Warning: failed to save sample chapter %d: %v", ch.Index, err)
		}
	}
}
