package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tuitheme/tuitheme/color"
	"github.com/tuitheme/tuitheme/filesystem"
	"github.com/tuitheme/tuitheme/icon"
	"github.com/tuitheme/tuitheme/style"
	"github.com/tuitheme/tuitheme/theme"
	"github.com/tuitheme/tuitheme/util"
	"github.com/tuitheme/tuitheme/where"
)

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringP("output", "o", "", "Write the document here instead of the themes directory")
	newCmd.Flags().BoolP("force", "f", false, "Overwrite an existing document")
}

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Write a starter theme document",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			output = lo.Must(cmd.Flags().GetString("output"))
			force  = lo.Must(cmd.Flags().GetBool("force"))
		)

		path := output
		if path == "" {
			name := util.ThemeFilename(args[0])
			if name == "" {
				handleErr(fmt.Errorf("invalid theme name %q", args[0]))
			}
			path = filepath.Join(where.Themes(), name+".toml")
		}

		exists, err := filesystem.API().Exists(path)
		handleErr(err)
		if exists && !force {
			handleErr(fmt.Errorf("%s already exists, use --force to overwrite it", path))
		}

		data, err := theme.NewDocument(style.Mocha, style.MochaStyles).Encode()
		handleErr(err)
		handleErr(filesystem.WriteFile(path, data))

		fmt.Printf("%s wrote %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Purple)(path))
	},
}
