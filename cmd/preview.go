package cmd

import (
	"errors"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tuitheme/tuitheme/filesystem"
	"github.com/tuitheme/tuitheme/history"
	"github.com/tuitheme/tuitheme/key"
	"github.com/tuitheme/tuitheme/tui"
	"github.com/tuitheme/tuitheme/where"
)

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringP("sample", "s", "", "Text rendered in each style")
	lo.Must0(viper.BindPFlag(key.PreviewSample, previewCmd.Flags().Lookup("sample")))
}

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Browse the styles of a theme document",
	Long: `Browse the styles and palette of a theme document.

Without a file, the document set by theme.path is opened, or else the most
recently opened one.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path, err := themePath(args)
		handleErr(err)

		handleErr(tui.Run(&tui.Options{
			Path:   path,
			Sample: viper.GetString(key.PreviewSample),
			Decode: decodeOptions(),
		}))
	},
}

var errNoTheme = errors.New("no theme document given, pass a file or set theme.path")

// themePath picks the document named by args, theme.path or history, in
// that order. Bare names are looked up in the themes directory.
func themePath(args []string) (string, error) {
	if len(args) > 0 {
		return lookupTheme(args[0])
	}

	if path := viper.GetString(key.ThemePath); path != "" {
		return lookupTheme(path)
	}

	last, err := history.Last()
	if err != nil {
		return "", err
	}
	entry, ok := last.Get()
	if !ok {
		return "", errNoTheme
	}
	return entry.Path, nil
}

func lookupTheme(name string) (string, error) {
	fs := filesystem.API()
	if exists, err := fs.Exists(name); err != nil || exists {
		return name, err
	}

	if filepath.Base(name) != name {
		return name, nil
	}

	for _, candidate := range []string{name, name + ".toml"} {
		path := filepath.Join(where.Themes(), candidate)
		if exists, err := fs.Exists(path); err != nil || exists {
			return path, err
		}
	}
	return name, nil
}
