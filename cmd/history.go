package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/user/ytclip/db"
	"github.com/user/ytclip/pkg/timeutil"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded downloads",
	Long:  `Display all recorded clip downloads as a table, newest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.Open()
		if err != nil {
			return fmt.Errorf("failed to open history database: %w", err)
		}
		defer database.Close()

		downloads, err := db.ListDownloads(database)
		if err != nil {
			return fmt.Errorf("failed to query downloads: %w", err)
		}

		if len(downloads) == 0 {
			fmt.Println("No downloads recorded yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tWhen\tVideo\tRange\tSpeed\tStatus\tOutput")
		fmt.Fprintln(w, "--\t----\t-----\t-----\t-----\t------\t------")

		for _, d := range downloads {
			title := d.Title
			if len(title) > 30 {
				title = title[:27] + "..."
			}

			rangeStr := fmt.Sprintf("%s - %s",
				timeutil.FormatTime(d.StartSeconds),
				timeutil.FormatTime(d.EndSeconds))

			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.1fx\t%s\t%s\n",
				d.ID, d.CreatedAt, title, rangeStr, d.Speed, d.Status, d.OutputFile)
		}

		w.Flush()
		fmt.Printf("\n%d download(s) recorded.\n", len(downloads))
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded downloads",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.Open()
		if err != nil {
			return fmt.Errorf("failed to open history database: %w", err)
		}
		defer database.Close()

		removed, err := db.ClearDownloads(database)
		if err != nil {
			return fmt.Errorf("failed to clear downloads: %w", err)
		}

		fmt.Printf("Removed %d download(s) from history.\n", removed)
		return nil
	},
}

func init() {
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}
