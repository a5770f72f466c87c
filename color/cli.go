package color

// Accents used by command output. They follow the terminal's own palette so
// CLI messages respect the user's scheme.
var (
	Purple   = Magenta
	HiRed    = LightRed
	HiGreen  = LightGreen
	HiYellow = LightYellow
	HiBlue   = LightBlue
	HiPurple = LightMagenta
	HiCyan   = LightCyan

	Orange = RGB(0xff, 0xb7, 0x03)
	Faint  = RGB(0x80, 0x80, 0x80)
)
