// Package open launches theme documents in an editor or the system's default handler.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/tuitheme/tuitheme/constant"
)

// Run opens input with the default system handler and waits for it.
func Run(input string) error {
	cmd, ok := command(input)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
	return cmd.Run()
}

// RunWith opens input with app and waits for it to exit. The app shares the
// terminal, so terminal editors work. An empty app is Run.
func RunWith(input, app string) error {
	if app == "" {
		return Run(input)
	}
	cmd, ok := commandWith(input, app)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	return cmd.Run()
}

// Editor returns the editor named by $VISUAL or $EDITOR, if any.
func Editor() string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if editor := strings.TrimSpace(os.Getenv(env)); editor != "" {
			return editor
		}
	}
	return ""
}

func command(input string) (*exec.Cmd, bool) {
	if runtime.GOOS == constant.Windows {
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), true
	}

	opener, ok := constant.Openers[runtime.GOOS]
	if !ok {
		return nil, false
	}
	return exec.Command(opener, input), true
}

// commandWith splits app into a program and its arguments, so editors such
// as "code --wait" work.
func commandWith(input, app string) (*exec.Cmd, bool) {
	fields := strings.Fields(app)
	if len(fields) == 0 {
		return command(input)
	}

	if _, ok := constant.Openers[runtime.GOOS]; !ok && runtime.GOOS != constant.Windows {
		return nil, false
	}
	return exec.Command(fields[0], append(fields[1:], input)...), true
}
