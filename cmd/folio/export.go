package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kjaer/folio/pkg/integrations"
)

var exportCmd = &cobra.Command{
	Use:   "export [book-id]",
	Short: "Export a book as EPUB",
	Long:  "Compile a stored book's chapters into an EPUB file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, repo := mustOpen()
		defer repo.Close()

		book, err := repo.GetBook(args[0])
		if err != nil {
			cobra.CheckErr(err)
		}
		if book == nil {
			cobra.CheckErr(fmt.Errorf("book %s not found", args[0]))
		}

		chapters, err := repo.GetChapters(book.ID)
		if err != nil {
			cobra.CheckErr(err)
		}

		outDir, _ := cmd.Flags().GetString("out")
		if outDir == "" {
			outDir = cfg.Library.ExportDir
		}

		builder := integrations.NewEPubBuilder(outDir)
		path, err := builder.CreateEPub(book, chapters)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("export failed: %w", err))
		}

		fmt.Printf("Exported '%s' to %s\n", book.Title, path)
	},
}

func init() {
	exportCmd.Flags().StringP("out", "o", "", "Directory to write the EPUB to (defaults to the configured export dir)")
}
