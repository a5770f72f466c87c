package cmd

import (
	"encoding/json"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tuitheme/tuitheme/color"
	"github.com/tuitheme/tuitheme/history"
	"github.com/tuitheme/tuitheme/icon"
	"github.com/tuitheme/tuitheme/style"
	"github.com/tuitheme/tuitheme/util"
)

func init() {
	rootCmd.AddCommand(recentCmd)

	recentCmd.Flags().BoolP("json", "j", false, "Print entries as JSON")
	recentCmd.Flags().StringP("remove", "r", "", "Forget a document")
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently checked or previewed theme documents",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if path := lo.Must(cmd.Flags().GetString("remove")); path != "" {
			handleErr(history.Remove(path))
			cmd.Printf("%s forgot %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), path)
			return
		}

		entries, err := history.Get()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(entries))
			return
		}

		if len(entries) == 0 {
			cmd.Println(style.Faint("nothing opened yet"))
			return
		}

		for _, e := range entries {
			cmd.Printf(
				"%s %s %s\n  %s\n",
				icon.Get(icon.File),
				style.Strong(e.Name()),
				style.Faint(e.OpenedAt.Format(time.DateTime)),
				style.Faint(e.Path+", "+util.Quantify(e.Styles, "style", "styles")+", "+util.Quantify(e.Colors, "color", "colors")),
			)
		}
	},
}
