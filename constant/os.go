package constant

// GOOS values open knows how to handle.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
)

// Openers maps a GOOS value to the program that opens a file with its
// default handler. Windows goes through rundll32 instead.
var Openers = map[string]string{
	Darwin:  "open",
	Linux:   "xdg-open",
	Android: "termux-open",
}
