// Package launcher maps the command-line activity selector to an activity
// and runs it.
package launcher

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-theft-auto/rasterlab/internal/activity"
)

// Process exit codes returned by Dispatch. A bad selector and a failed run
// both exit with 1.
const (
	ExitOK      = 0
	ExitUsage   = 1
	ExitFailure = 1
)

// reservedActivity is skipped by the assignment set.
const reservedActivity = 5

// ErrUnknownActivity is returned for selectors outside the activity set.
var ErrUnknownActivity = errors.New("unknown activity")

// RunFunc runs an activity to completion.
type RunFunc func(a activity.Activity) error

// Launcher dispatches argv to one activity.
type Launcher struct {
	out        io.Writer
	errOut     io.Writer
	activities []activity.Activity
	run        RunFunc
	styled     bool
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithStyle enables bold and faint ANSI styling in the usage text.
func WithStyle(styled bool) Option {
	return func(l *Launcher) { l.styled = styled }
}

// WithErrorOutput sets where run failures are reported.
func WithErrorOutput(w io.Writer) Option {
	return func(l *Launcher) { l.errOut = w }
}

// New creates a launcher that prints to out and runs activities with run.
func New(out io.Writer, run RunFunc, opts ...Option) *Launcher {
	l := &Launcher{
		out:        out,
		errOut:     out,
		activities: activity.All(),
		run:        run,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Dispatch runs the activity selected by args[1] and returns the exit code.
// args is the full argument vector including the program name.
func (l *Launcher) Dispatch(args []string) int {
	program := "rasterlab"
	if len(args) > 0 {
		program = args[0]
	}

	if len(args) != 2 {
		fmt.Fprintln(l.out, "Error: Missing activity number")
		l.printUsage(program)
		return ExitUsage
	}

	number := atoi(args[1])
	a, err := l.lookup(number)
	if err != nil {
		fmt.Fprintf(l.out, "Error: Invalid activity number '%d'\n", number)
		fmt.Fprintf(l.out, "Note: Activity %d is not available in this assignment set\n\n", reservedActivity)
		l.printUsage(program)
		return ExitUsage
	}

	fmt.Fprintf(l.out, "Launching Activity %d: %s\n", a.Number, a.Name)
	fmt.Fprintf(l.out, "%s\n\n", strings.Repeat("═", 39))

	if err := l.run(a); err != nil {
		fmt.Fprintf(l.errOut, "Error: %v\n", err)
		return ExitFailure
	}
	return ExitOK
}

func (l *Launcher) lookup(number int) (activity.Activity, error) {
	if number != reservedActivity {
		for _, a := range l.activities {
			if a.Number == number {
				return a, nil
			}
		}
	}
	return activity.Activity{}, fmt.Errorf("%w: %d", ErrUnknownActivity, number)
}

// atoi parses a leading decimal integer the way C's atoi does: leading
// spaces and a sign are accepted, parsing stops at the first non-digit and
// text without digits yields 0.
func atoi(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r' || s[i] == '\f' || s[i] == '\v') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
		if n > 1<<31 {
			// Past any valid selector; keep it from wrapping.
			n = 1 << 31
		}
	}
	if neg {
		return -n
	}
	return n
}
