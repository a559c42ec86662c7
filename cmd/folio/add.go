package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/kjaer/folio/pkg/importer"
)

var addCmd = &cobra.Command{
	Use:   "add [file]",
	Short: "Import a book into your library",
	Long:  "Split a plain-text or markdown file into chapters and add it to the library",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		_, repo := mustOpen()
		defer repo.Close()

		book, chapters, err := importer.ImportFile(args[0])
		if err != nil {
			cobra.CheckErr(fmt.Errorf("import failed: %w", err))
		}

		if author, _ := cmd.Flags().GetString("author"); author != "" {
			book.Author = author
		}

		if err := repo.SaveBook(book); err != nil {
			cobra.CheckErr(fmt.Errorf("failed to save book: %w", err))
		}
		for _, ch := range chapters {
			if err := repo.SaveChapter(ch); err != nil {
				log.Printf("Warning: failed to save chapter %q: %v", ch.Title, err)
			}
		}

		fmt.Printf("Added '%s' with %d chapters\n", book.Title, len(chapters))
		fmt.Printf("Book ID: %s\n", book.ID)
	},
}

func init() {
	addCmd.Flags().StringP("author", "a", "", "Author to record for the imported book")
}
