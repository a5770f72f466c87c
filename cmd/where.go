package cmd

import (
	"encoding/json"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/tuitheme/tuitheme/color"
	"github.com/tuitheme/tuitheme/style"
	"github.com/tuitheme/tuitheme/where"
)

type location struct {
	name   string
	flag   string
	short  mo.Option[string]
	path   func() string
	hidden bool
}

// locations are listed in this order. Hidden ones are only printed when
// asked for by flag.
var locations = []location{
	{name: "Config", flag: "config", short: mo.Some("c"), path: where.Config},
	{name: "Themes", flag: "themes", short: mo.Some("t"), path: where.Themes},
	{name: "Logs", flag: "logs", short: mo.Some("l"), path: where.Logs},
	{name: "Cache", flag: "cache", path: where.Cache, hidden: true},
	{name: "Recent", flag: "recent", path: where.Recent, hidden: true},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, l := range locations {
		whereCmd.Flags().BoolP(l.flag, l.short.OrEmpty(), false, "Print only the "+l.name+" directory")
		if l.hidden {
			lo.Must0(whereCmd.Flags().MarkHidden(l.flag))
		}
	}
	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(locations, func(l location, _ int) string { return l.flag })...)

	whereCmd.Flags().BoolP("json", "j", false, "Print every location as JSON")
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where configuration, themes and logs are kept",
	Run: func(cmd *cobra.Command, args []string) {
		for _, l := range locations {
			if lo.Must(cmd.Flags().GetBool(l.flag)) {
				cmd.Println(l.path())
				return
			}
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			paths := lo.SliceToMap(locations, func(l location) (string, string) {
				return l.flag, l.path()
			})
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(paths))
			return
		}

		header := style.New().Bold().Fg(color.HiPurple).Render
		visible := lo.Reject(locations, func(l location, _ int) bool { return l.hidden })
		for i, l := range visible {
			if i > 0 {
				cmd.Println()
			}
			cmd.Printf("%s %s\n", header(l.name+"?"), style.Fg(color.Yellow)("--"+l.flag))
			cmd.Println(l.path())
		}
	},
}
