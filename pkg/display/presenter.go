package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/shinydir/pkg/errors"
	"github.com/arthur-debert/shinydir/pkg/paths"
	"github.com/arthur-debert/shinydir/pkg/plan"
	"github.com/arthur-debert/shinydir/pkg/style"
)

// Presenter writes human and machine output
type Presenter struct {
	out      io.Writer
	errOut   io.Writer
	outTheme *style.Theme
	errTheme *style.Theme
}

// New creates a Presenter. Each stream gets its own theme so color support
// is detected per stream.
func New(out, errOut io.Writer, opts style.Options) *Presenter {
	return &Presenter{
		out:      out,
		errOut:   errOut,
		outTheme: style.NewTheme(out, opts),
		errTheme: style.NewTheme(errOut, opts),
	}
}

// Notices prints the slow-script warning and the dry-run notice to stderr.
// A blank line follows when anything was printed, except in list mode.
func (p *Presenter) Notices(scriptWarning, dryRun, list bool) {
	t := p.errTheme

	if scriptWarning {
		fmt.Fprintf(p.errOut, "%s Your auto-move rules are configured to call scripts %s. If execution time gets too long, %s.\n",
			t.Render("HeadsUp", "Heads up!"),
			t.Render("Dimmed", "(to_script)"),
			t.Render("Emphasis", "scripts are the cause"))
	}

	if dryRun {
		fmt.Fprintf(p.errOut, "%s Auto-move running in %s, no files will actually be moved.\n",
			t.Render("Info", "Info!"),
			t.Render("Emphasis", "dry mode"))
	}

	if (scriptWarning || dryRun) && !list {
		fmt.Fprintln(p.errOut)
	}
}

// Summary prints the per-rule report for a plan or an executed plan
func (p *Presenter) Summary(result plan.Plan, mode Mode) {
	for i, outcome := range result.Outcomes {
		if i > 0 {
			fmt.Fprintln(p.out)
		}

		summary := Summarize(outcome)
		switch summary.Kind {
		case plan.DirectoryMissing:
			p.directoryMissing(summary)
		case plan.ListFailed:
			p.listFailed(summary)
		default:
			p.ruleSummary(summary, mode)
		}
	}
}

// List prints one `<source> <destination>` line per non-failed entry, spaces escaped.
// Nothing else is written.
func (p *Presenter) List(result plan.Plan) {
	for _, move := range result.Moves() {
		fmt.Fprintf(p.out, "%s %s\n", paths.EscapeSpaces(move.File), paths.EscapeSpaces(move.MoveTo))
	}
}

// Error prints a fatal error to stderr
func (p *Presenter) Error(err error) {
	fmt.Fprintf(p.errOut, "%s %s\n", p.errTheme.Render("Error", "Error:"), errors.Describe(err))
}

func (p *Presenter) ruleName(t *style.Theme, summary RuleSummary, styleName string) string {
	if !summary.CustomName && styleName == "RuleName" {
		styleName = "RulePath"
	}
	return t.Render(styleName, summary.Name)
}

func (p *Presenter) directoryMissing(summary RuleSummary) {
	t := p.errTheme
	if t.Color() {
		fmt.Fprintf(p.errOut, "%s Directory does not exist!\n", p.ruleName(t, summary, "Missing"))
		return
	}
	fmt.Fprintf(p.errOut, "%s: Directory does not exist!\n", summary.Name)
}

func (p *Presenter) listFailed(summary RuleSummary) {
	t := p.errTheme
	fmt.Fprintf(p.errOut, "%s: %s\n", p.ruleName(t, summary, "Missing"), t.Render("EntryError", errors.Describe(summary.Err)))
}

func (p *Presenter) ruleSummary(summary RuleSummary, mode Mode) {
	t := p.outTheme
	name := p.ruleName(t, summary, "RuleName")

	if summary.OK == 0 && summary.Failed == 0 {
		fmt.Fprintf(p.out, "%s %s\n", name, t.Render("Ok", t.Glyph(style.GlyphOK)))
		return
	}

	var info []string
	if summary.OK > 0 {
		verb := "files moved"
		if mode == ModeCheck {
			verb = "misplaced files"
		}
		info = append(info, t.Render("MovedCount", fmt.Sprintf("%d %s", summary.OK, verb)))
	}
	if summary.Failed > 0 {
		info = append(info, t.Render("ErrorCount", fmt.Sprintf("%d errors", summary.Failed)))
	}
	fmt.Fprintf(p.out, "%s %s %s\n", name, t.Render("Dot", t.Glyph(style.GlyphDot)), strings.Join(info, ", "))

	if len(summary.Destinations) > 0 {
		label := "Moved To"
		if mode == ModeCheck {
			label = "Move To"
		}

		dests := make([]string, 0, len(summary.Destinations))
		for _, dest := range summary.Destinations {
			if t.Color() {
				dests = append(dests, fmt.Sprintf("%s %s",
					t.Render("DestDir", dest.Dir),
					t.Render("Count", fmt.Sprintf("(%d)", dest.Count))))
			} else {
				dests = append(dests, fmt.Sprintf("%s %d", dest.Dir, dest.Count))
			}
		}

		if t.Color() {
			fmt.Fprintf(p.out, "%s %s %s\n",
				t.Render("Arrow", t.Glyph(style.GlyphArrow)),
				t.Render("Label", label),
				strings.Join(dests, t.Render("Separator", ", ")))
		} else {
			fmt.Fprintf(p.out, "%s %s: %s\n", t.Glyph(style.GlyphArrow), label, strings.Join(dests, ", "))
		}
	}

	for _, msg := range summary.Errors {
		fmt.Fprintln(p.errOut, p.errTheme.Render("EntryError", msg))
	}
}
