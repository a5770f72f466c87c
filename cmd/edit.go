package cmd

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tuitheme/tuitheme/key"
	"github.com/tuitheme/tuitheme/open"
)

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringP("editor", "e", "", "Editor to open the document with")
	lo.Must0(viper.BindPFlag(key.ThemeEditor, editCmd.Flags().Lookup("editor")))
	editCmd.Flags().BoolP("check", "c", false, "Check the document after the editor exits")
}

var editCmd = &cobra.Command{
	Use:   "edit [file]",
	Short: "Open a theme document in an editor",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path, err := themePath(args)
		handleErr(err)

		editor := viper.GetString(key.ThemeEditor)
		if editor == "" {
			editor = open.Editor()
		}
		handleErr(open.RunWith(path, editor))

		if lo.Must(cmd.Flags().GetBool("check")) {
			checkCmd.Run(checkCmd, []string{path})
		}
	},
}
