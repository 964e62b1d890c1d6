package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/assetripper/asset"
	"github.com/wippyai/assetripper/decode"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resolvedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	unresolvedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	nullStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// styled reports whether out is a terminal worth colouring.
func styled(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func render(style lipgloss.Style, color bool, s string) string {
	if !color {
		return s
	}
	return style.Render(s)
}

// writeDependencies lists the references of every decoded record, resolved
// against the other inputs.
func writeDependencies(out io.Writer, results decode.Results, color bool) error {
	table := results.Table(0)
	for i, r := range results {
		if r.Err != nil {
			continue
		}
		header := fmt.Sprintf("%s (&%d)", r.Job.Name, decode.PathID(i))
		if _, err := fmt.Fprintln(out, render(headerStyle, color, header)); err != nil {
			return err
		}
		for d := range asset.Walk(table, r.Record) {
			if _, err := fmt.Fprintf(out, "  %s %s\n",
				render(pathStyle, color, d.Path()), describe(d, color)); err != nil {
				return err
			}
		}
	}
	return nil
}

func describe(d asset.Dependency, color bool) string {
	switch {
	case d.Pointer.IsNull():
		return render(nullStyle, color, "null")
	case d.Err != nil:
		return render(unresolvedStyle, color, fmt.Sprintf("%v unresolved", d.Pointer))
	default:
		return render(resolvedStyle, color, fmt.Sprintf("%v -> %s", d.Pointer, d.Target.TypeName()))
	}
}
