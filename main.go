// Command tuitheme checks, previews and generates Go code for TOML terminal themes.
package main

import (
	"github.com/samber/lo"
	"github.com/tuitheme/tuitheme/cmd"
	"github.com/tuitheme/tuitheme/config"
	"github.com/tuitheme/tuitheme/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
