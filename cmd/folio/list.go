package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kjaer/folio/pkg/reader"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all books in your library",
	Long:  "Display all books in your library in a formatted table",
	Run: func(cmd *cobra.Command, args []string) {
		_, repo := mustOpen()
		defer repo.Close()

		books, err := repo.ListBooks()
		if err != nil {
			cobra.CheckErr(err)
		}

		if len(books) == 0 {
			fmt.Println("No books in library. Use 'folio add <file>' to import one.")
			return
		}

		columns := []table.Column{
			{Title: "Title", Width: 36},
			{Title: "Author", Width: 20},
			{Title: "Chapters", Width: 8},
			{Title: "At", Width: 8},
			{Title: "ID", Width: 36},
		}

		rows := []table.Row{}
		for _, book := range books {
			count, _ := repo.ChapterCount(book.ID)
			at := "-"
			if raw, ok := repo.Setting(book.ID, reader.KeyChapterIndex); ok {
				if idx, err := strconv.Atoi(raw); err == nil {
					at = fmt.Sprintf("ch %d", idx+1)
				}
			}
			rows = append(rows, table.Row{
				truncateString(book.Title, 34),
				truncateString(book.Author, 18),
				fmt.Sprintf("%d", count),
				at,
				book.ID,
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Bold(false)
		t.SetStyles(s)

		fmt.Printf("\nLibrary (%d books)\n\n", len(books))
		fmt.Println(t.View())
	},
}

func truncateString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
