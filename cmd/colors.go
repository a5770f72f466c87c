package cmd

import (
	"fmt"
	"slices"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tuitheme/tuitheme/color"
	"github.com/tuitheme/tuitheme/filesystem"
	"github.com/tuitheme/tuitheme/style"
	"github.com/tuitheme/tuitheme/theme"
)

func init() {
	rootCmd.AddCommand(colorsCmd)

	colorsCmd.Flags().StringP("filter", "f", "", "Show only colors whose name fuzzy matches")
	colorsCmd.Flags().StringP("theme", "t", "", "Also list the palette of this theme document")
}

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List the color names a theme document may use",
	Long: `List the named colors accepted in theme documents. Indexed colors (0-255)
and #rrggbb literals are accepted as well.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			filter = lo.Must(cmd.Flags().GetString("filter"))
			file   = lo.Must(cmd.Flags().GetString("theme"))
		)

		match := func(name string) bool {
			return filter == "" || fuzzy.MatchFold(filter, name)
		}

		swatch := func(c color.Color) string {
			return style.Bg(c)("    ")
		}

		for _, name := range lo.Filter(color.Names(), func(name string, _ int) bool { return match(name) }) {
			cmd.Printf("%s %s\n", swatch(color.MustParse(name)), name)
		}

		if file == "" {
			return
		}

		path, err := lookupTheme(file)
		handleErr(err)
		data, err := filesystem.API().ReadFile(path)
		handleErr(err)
		doc, err := theme.ParseDocument(data, decodeOptions()...)
		handleErr(err)

		names := lo.Filter(lo.Keys(doc.Palette), func(name string, _ int) bool { return match(name) })
		slices.Sort(names)
		if len(names) == 0 {
			return
		}

		cmd.Println()
		cmd.Println(style.Title(path))
		for _, name := range names {
			c, err := doc.Palette.Resolve(name)
			if err != nil {
				cmd.Printf("%s %s %s\n", style.Fg(color.Red)("????"), name, style.Faint(err.Error()))
				continue
			}
			cmd.Printf("%s %s %s\n", swatch(c), name, style.Faint(fmt.Sprintf("= %s", doc.Palette[name])))
		}
	},
}
