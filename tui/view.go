package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/tuitheme/tuitheme/color"
	"github.com/tuitheme/tuitheme/icon"
	"github.com/tuitheme/tuitheme/style"
	"github.com/tuitheme/tuitheme/util"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
	sampleBoxStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

func (b *statefulBubble) View() string {
	switch b.state {
	case loadingState:
		return b.viewLoading()
	case stylesState:
		return listExtraPaddingStyle.Render(b.stylesC.View())
	case paletteState:
		return listExtraPaddingStyle.Render(b.paletteC.View())
	case detailState:
		return b.viewDetail()
	case errorState:
		return b.viewError()
	default:
		return "Unknown state"
	}
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(true, []string{
		style.Title("Loading"),
		"",
		b.spinnerC.View() + " reading " + style.Fg(color.Purple)(b.options.Path),
	})
}

func (b *statefulBubble) viewDetail() string {
	e := b.selected
	if e == nil {
		return b.renderLines(true, []string{style.Faint("nothing selected")})
	}

	sample := b.options.Sample
	if sample == "" {
		sample = e.name
	}

	lines := []string{
		style.Title(e.name),
		"",
		sampleBoxStyle.Render(e.style.Render(sample)),
		"",
	}

	attr := func(name, value, resolved string) string {
		if value == "" {
			return fmt.Sprintf("%-10s %s", name, style.Faint("unset"))
		}
		if resolved != "" && resolved != value {
			return fmt.Sprintf("%-10s %s %s", name, value, style.Faint("→ "+resolved))
		}
		return fmt.Sprintf("%-10s %s", name, value)
	}

	lines = append(lines,
		attr("fg", e.proxy.FgName(), e.style.Foreground.String()),
		attr("bg", e.proxy.BgName(), e.style.Background.String()),
		attr("add", strings.Join(e.style.Add.Names(), ", "), ""),
		attr("remove", strings.Join(e.style.Sub.Names(), ", "), ""),
	)

	if e.err != nil {
		width := util.Clamp(b.width-4, 20, 100)
		lines = append(lines,
			"",
			style.Fg(color.Red)(icon.Get(icon.Fail)+" this style does not resolve cleanly:"),
			wrap.String(e.err.Error(), width),
		)
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewError() string {
	width := util.Clamp(b.width-4, 20, 100)
	body := style.New().Fg(color.Red).Bold().Render(b.lastError.Error())
	return b.renderLines(true, []string{
		style.ErrorTitle("Error"),
		"",
		icon.Get(icon.Fail) + " could not preview the theme:",
		"",
		wrap.String(body, width),
	})
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h+3 {
			l += strings.Repeat("\n", b.height-h-3)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
