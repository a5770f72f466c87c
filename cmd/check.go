package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tuitheme/tuitheme/color"
	"github.com/tuitheme/tuitheme/filesystem"
	"github.com/tuitheme/tuitheme/history"
	"github.com/tuitheme/tuitheme/icon"
	"github.com/tuitheme/tuitheme/key"
	"github.com/tuitheme/tuitheme/log"
	"github.com/tuitheme/tuitheme/style"
	"github.com/tuitheme/tuitheme/theme"
	"github.com/tuitheme/tuitheme/util"
)

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolP("json", "j", false, "Print problems as JSON")
}

type problem struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Report problems of a theme document",
	Long: `Report palette entries that are not colors, style references that do not
resolve and unknown keys inside style tables.

Problems are warnings unless --strict is set.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path, err := themePath(args)
		handleErr(err)

		data, err := filesystem.API().ReadFile(path)
		handleErr(err)

		doc, err := theme.ParseDocument(data, append(decodeOptions(), theme.WithStrict(false))...)
		handleErr(err)

		if err := history.Save(path, len(doc.Styles), len(doc.Palette)); err != nil {
			log.Warnf("could not record %s: %v", path, err)
		}

		problems := doc.Check()

		if lo.Must(cmd.Flags().GetBool("json")) {
			out := lo.Map(problems, func(err error, _ int) problem {
				var fe *theme.FieldError
				if errors.As(err, &fe) {
					return problem{Path: fe.Path, Message: fe.Err.Error()}
				}
				return problem{Message: err.Error()}
			})
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(out))
		} else {
			for _, p := range problems {
				cmd.Printf("%s %s\n", style.Fg(color.Yellow)(icon.Get(icon.Warn)), p)
			}
		}

		if len(problems) > 0 && viper.GetBool(key.ThemeStrict) {
			handleErr(fmt.Errorf("%s has %s", path, util.Quantify(len(problems), "problem", "problems")))
		}

		cmd.Printf(
			"%s %s: %s, %s, %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(path),
			util.Quantify(len(doc.Styles), "style", "styles"),
			util.Quantify(len(doc.Palette), "color", "colors"),
			util.Quantify(len(problems), "warning", "warnings"),
		)
	},
}
