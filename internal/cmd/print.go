package cmd

import (
	"fmt"

	"github.com/fatih/color"
)

// palette is the two-tone scheme for human output; plain and no-color
// modes swap every function for fmt.Sprint.
type palette struct {
	label func(a ...interface{}) string
	good  func(a ...interface{}) string
	bad   func(a ...interface{}) string
}

func newPalette(cfg Config) palette {
	if cfg.Plain || cfg.NoColor {
		return palette{label: fmt.Sprint, good: fmt.Sprint, bad: fmt.Sprint}
	}
	return palette{
		label: color.New(color.FgCyan).SprintFunc(),
		good:  color.New(color.FgGreen).SprintFunc(),
		bad:   color.New(color.FgRed).SprintFunc(),
	}
}

// result renders a boolean outcome, green for true and red for false.
func (a *app) result(ok bool, text string) string {
	if ok {
		return a.pal.good(text)
	}
	return a.pal.bad(text)
}
