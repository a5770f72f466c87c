package cmd

import (
	"encoding/json"
	"runtime"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tuitheme/tuitheme/color"
	"github.com/tuitheme/tuitheme/constant"
	"github.com/tuitheme/tuitheme/style"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "Print only the version")
	versionCmd.Flags().BoolP("json", "j", false, "Print build information as JSON")
}

type buildInfo struct {
	App      string `json:"app"`
	Version  string `json:"version"`
	Revision string `json:"revision"`
	BuiltAt  string `json:"built_at"`
	BuiltBy  string `json:"built_by"`
	Platform string `json:"platform"`
}

func currentBuild() buildInfo {
	return buildInfo{
		App:      constant.App,
		Version:  constant.Version,
		Revision: lo.CoalesceOrEmpty(constant.Revision, "unknown"),
		BuiltAt:  lo.CoalesceOrEmpty(strings.TrimSpace(constant.BuiltAt), "unknown"),
		BuiltBy:  lo.CoalesceOrEmpty(constant.BuiltBy, "unknown"),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}
}

var versionTemplate = lo.Must(template.New("version").Funcs(template.FuncMap{
	"faint": style.Faint,
	"bold":  style.Strong,
	"app":   style.Fg(color.Purple),
}).Parse(`{{ app .App }} {{ bold .Version }}

  {{ faint "Revision" }}  {{ bold .Revision }}
  {{ faint "Built at" }}  {{ bold .BuiltAt }}
  {{ faint "Built by" }}  {{ bold .BuiltBy }}
  {{ faint "Platform" }}  {{ bold .Platform }}

  {{ faint "Generated files are stamped \"themegen version" }} {{ .Version }}{{ faint "\"" }}
`))

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		info := currentBuild()

		switch {
		case lo.Must(cmd.Flags().GetBool("short")):
			cmd.Println(info.Version)
		case lo.Must(cmd.Flags().GetBool("json")):
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(info))
		default:
			handleErr(versionTemplate.Execute(cmd.OutOrStdout(), info))
		}
	},
}
