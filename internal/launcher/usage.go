package launcher

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const bannerTitle = "Computer Vision Assignments - Activity Launcher"

// bannerWidth is the inner width of the banner box, in cells.
const bannerWidth = 60

var (
	titleStyle = ansi.Style{}.Bold()
	hintStyle  = ansi.Style{}.Faint()
)

func (l *Launcher) style(s ansi.Style, text string) string {
	if !l.styled {
		return text
	}
	return s.Styled(text)
}

// banner returns the boxed title with the text centered by display width.
func (l *Launcher) banner() string {
	title := l.style(titleStyle, bannerTitle)
	pad := bannerWidth - ansi.StringWidth(title)
	if pad < 0 {
		pad = 0
	}
	left := pad / 2
	right := pad - left

	var b strings.Builder
	b.WriteString("╔" + strings.Repeat("═", bannerWidth) + "╗\n")
	b.WriteString("║" + strings.Repeat(" ", left) + title + strings.Repeat(" ", right) + "║\n")
	b.WriteString("╚" + strings.Repeat("═", bannerWidth) + "╝\n")
	return b.String()
}

func (l *Launcher) printUsage(program string) {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(l.banner())
	b.WriteString("\n")
	fmt.Fprintf(&b, "Usage: %s <activity_number>\n\n", program)
	b.WriteString("Available activities:\n")
	for _, a := range l.activities {
		fmt.Fprintf(&b, "  %-2d - %s\n", a.Number, l.style(titleStyle, a.Name))
		fmt.Fprintf(&b, "       %s\n\n", l.style(hintStyle, a.Summary))
	}
	b.WriteString("Examples:\n")
	for _, n := range l.examples() {
		fmt.Fprintf(&b, "  %s %d    # Run activity %d\n", program, n, n)
	}
	b.WriteString("\n")
	fmt.Fprint(l.out, b.String())
}

// examples picks the first activity and activity 4, the pair shown in the
// usage text of the assignment set.
func (l *Launcher) examples() []int {
	var out []int
	for _, a := range l.activities {
		if len(out) == 0 || a.Number == reservedActivity-1 {
			out = append(out, a.Number)
		}
	}
	return out
}
