package cmd

import (
	"encoding/json"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tuitheme/tuitheme/key"
	"github.com/tuitheme/tuitheme/theme"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().BoolP("indent", "i", false, "Indent the output")
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of theme documents",
	Long: `Print the JSON schema of theme documents. TOML language servers such as
taplo can validate documents against it.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		if lo.Must(cmd.Flags().GetBool("indent")) {
			encoder.SetIndent("", "  ")
		}
		handleErr(encoder.Encode(theme.Schema(viper.GetString(key.ThemePaletteKey))))
	},
}
