package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tuitheme/tuitheme/color"
	"github.com/tuitheme/tuitheme/filesystem"
	"github.com/tuitheme/tuitheme/gen"
	"github.com/tuitheme/tuitheme/icon"
	"github.com/tuitheme/tuitheme/key"
	"github.com/tuitheme/tuitheme/style"
	"golang.org/x/term"
)

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("suffix", "", "Suffix of the generated file")
	lo.Must0(viper.BindPFlag(key.GenSuffix, generateCmd.Flags().Lookup("suffix")))

	generateCmd.Flags().BoolP("force", "f", false, "Overwrite the target without asking")
	lo.Must0(viper.BindPFlag(key.GenForce, generateCmd.Flags().Lookup("force")))

	generateCmd.Flags().BoolP("dry-run", "n", false, "Print the generated code instead of writing it")
}

var generateCmd = &cobra.Command{
	Use:   "generate [dir]",
	Short: "Generate theme decoders, builders and accessors for a package",
	Long: `Generate theme code for the package in dir (default: the current directory).

Structs are selected with doc comment directives:

  //themegen:decoder                 UnmarshalTheme([]byte) error
  //themegen:builder context=Context Build(ctx *Context)
  //themegen:accessors               <Field>Style() and ValidateTheme()`,
	Example: "  //go:generate tuitheme generate",
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}

		opts := gen.Options{
			Suffix:     viper.GetString(key.GenSuffix),
			PaletteKey: viper.GetString(key.ThemePaletteKey),
			Force:      viper.GetBool(key.GenForce),
		}

		if lo.Must(cmd.Flags().GetBool("dry-run")) {
			pkg, err := gen.Scan(dir, opts.Suffix)
			handleErr(err)
			file, err := gen.Generate(pkg, opts)
			handleErr(err)
			src, err := gen.Render(file)
			handleErr(err)
			_, err = cmd.OutOrStdout().Write(src)
			handleErr(err)
			return
		}

		target, err := gen.Target(dir, opts)
		handleErr(err)

		if !opts.Force {
			handleErr(confirmOverwrite(target))
		}

		path, err := gen.Run(dir, opts)
		handleErr(err)

		fmt.Printf("%s wrote %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Purple)(path))
	},
}

var errAborted = errors.New("aborted")

// confirmOverwrite asks before replacing a file that was not generated.
func confirmOverwrite(target string) error {
	exists, err := filesystem.API().Exists(target)
	if err != nil || !exists {
		return err
	}

	generated, err := gen.IsGenerated(target)
	if err != nil || generated {
		return err
	}

	if !filesystem.IsOs() || !isTerminal() {
		return fmt.Errorf("%s exists and was not generated, use --force to overwrite it", target)
	}

	confirm := survey.Confirm{
		Message: fmt.Sprintf("%s exists and was not generated. Overwrite?", target),
		Default: false,
	}
	var response bool
	if err := survey.AskOne(&confirm, &response); err != nil {
		return err
	}
	if !response {
		return errAborted
	}
	return nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
