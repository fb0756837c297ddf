package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/ytget/videogrid/internal/diff"
	"github.com/ytget/videogrid/internal/model"
)

// Printer writes videos and edit scripts for humans.
type Printer struct {
	Out    io.Writer
	ShowID bool
}

// Title prints a bold heading followed by a faint count.
func (p *Printer) Title(title string, count, total int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(p.Out, title)
	if count == total {
		_, _ = c.Fprintf(p.Out, " - %d videos\n", count)
		return
	}
	_, _ = c.Fprintf(p.Out, " - %d of %d videos\n", count, total)
}

// Videos prints a table of videos.
func (p *Printer) Videos(videos []model.Video) {
	if len(videos) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(p.Out, " none\n\n")
		return
	}

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	if p.ShowID {
		tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Title"), bold.Sprint("Details"), bold.Sprint("Link"))
	} else {
		tbl.AddRow(bold.Sprint("Title"), bold.Sprint("Details"), bold.Sprint("Link"))
	}

	for _, v := range videos {
		if p.ShowID {
			tbl.AddRow(v.ID, v.DisplayTitle(), v.Subtitle(), v.Link)
		} else {
			tbl.AddRow(v.DisplayTitle(), v.Subtitle(), v.Link)
		}
	}

	_, _ = fmt.Fprintln(p.Out, tbl)
	_, _ = fmt.Fprintln(p.Out, "")
}

var opColors = map[diff.Op]*color.Color{
	diff.OpDelete:        color.New(color.FgRed),
	diff.OpDeleteSection: color.New(color.FgRed, color.Bold),
	diff.OpMoveSection:   color.New(color.FgYellow, color.Bold),
	diff.OpInsertSection: color.New(color.FgGreen, color.Bold),
	diff.OpInsert:        color.New(color.FgGreen),
	diff.OpMove:          color.New(color.FgYellow),
	diff.OpReload:        color.New(color.FgCyan),
}

var opMarks = map[diff.Op]string{
	diff.OpDelete:        "-",
	diff.OpDeleteSection: "-",
	diff.OpMoveSection:   "~",
	diff.OpInsertSection: "+",
	diff.OpInsert:        "+",
	diff.OpMove:          "~",
	diff.OpReload:        "*",
}

// Script prints one line per change, then the summary. titles maps identities
// to display titles shown next to the change.
func (p *Printer) Script(script diff.Script, titles map[string]string) {
	faint := color.New(color.Faint)
	for _, ch := range script.Changes {
		c, ok := opColors[ch.Op]
		if !ok {
			c = color.New()
		}

		_, _ = c.Fprintf(p.Out, "%s %s", opMarks[ch.Op], ch)
		if title, ok := titles[ch.ID]; ok && !ch.Op.IsSection() {
			_, _ = faint.Fprintf(p.Out, "  %s", title)
		}
		_, _ = fmt.Fprintln(p.Out)
	}

	_, _ = color.New(color.Bold).Fprintln(p.Out, script.Summary())
}
