// Package cmd implements the tuitheme command line.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tuitheme/tuitheme/color"
	"github.com/tuitheme/tuitheme/constant"
	"github.com/tuitheme/tuitheme/icon"
	"github.com/tuitheme/tuitheme/key"
	"github.com/tuitheme/tuitheme/log"
	"github.com/tuitheme/tuitheme/style"
	"github.com/tuitheme/tuitheme/theme"
)

func init() {
	rootCmd.SetOut(os.Stdout)
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().Bool("strict", false, "Treat colors that do not resolve as errors")
	lo.Must0(viper.BindPFlag(key.ThemeStrict, rootCmd.PersistentFlags().Lookup("strict")))

	rootCmd.PersistentFlags().String("palette-key", "", "Top-level table read as the palette")
	lo.Must0(viper.BindPFlag(key.ThemePaletteKey, rootCmd.PersistentFlags().Lookup("palette-key")))
}

var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Terminal UI themes from TOML documents",
	Long: style.Title(constant.App) + "\n\n" +
		style.New().Italic().Fg(color.HiPurple).Render("Check, preview and generate Go code for TOML terminal themes"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}
		handleErr(cmd.Help())
	},
}

// Execute runs the command line.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// decodeOptions returns the decoder options selected by configuration.
func decodeOptions() []theme.Option {
	return []theme.Option{
		theme.WithStrict(viper.GetBool(key.ThemeStrict)),
		theme.WithPaletteKey(viper.GetString(key.ThemePaletteKey)),
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
