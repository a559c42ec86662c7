package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kjaer/folio/pkg/reader"
)

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks [book-id]",
	Short: "List a book's bookmarks",
	Long:  "Show saved bookmarks for a book, newest first",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		_, repo := mustOpen()
		defer repo.Close()

		book, err := repo.GetBook(args[0])
		if err != nil {
			cobra.CheckErr(err)
		}
		if book == nil {
			cobra.CheckErr(fmt.Errorf("book %s not found", args[0]))
		}

		raw, ok := repo.Setting(book.ID, reader.KeyBookmarks)
		var bookmarks []reader.Bookmark
		if ok {
			// Malformed stored data reads as no bookmarks.
			_ = json.Unmarshal([]byte(raw), &bookmarks)
		}

		if len(bookmarks) == 0 {
			fmt.Printf("No bookmarks for '%s'\n", book.Title)
			return
		}

		fmt.Printf("Bookmarks for '%s' (%d)\n\n", book.Title, len(bookmarks))
		for i := len(bookmarks) - 1; i >= 0; i-- {
			bm := bookmarks[i]
			fmt.Printf("  %s  ch %d: %s  at %d%%  (%s)\n",
				formatBookmarkID(bm.ID), bm.ChapterIndex+1, bm.ChapterTitle, bm.Percent, bm.CreatedAt)
		}
	},
}

func formatBookmarkID(id int64) string {
	return fmt.Sprintf("#%d", id)
}
