package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/spaceranger/backend/pngsink"
	"github.com/npillmayer/spaceranger/core"
	"github.com/npillmayer/spaceranger/core/dimen"
	"github.com/npillmayer/spaceranger/core/percent"
	"github.com/npillmayer/spaceranger/engine/gridlayout"
	"github.com/npillmayer/spaceranger/engine/masters"
	"github.com/npillmayer/spaceranger/engine/ranger"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	repl      *readline.Instance
	op        *masters.Operator
	ctrl      *ranger.Controller
	renderer  *pngsink.Renderer
	completer *completer
}

func newIntp(op *masters.Operator, settings ranger.Settings, theme pngsink.Theme) *Intp {
	intp := &Intp{
		op:       op,
		ctrl:     ranger.New(op, masters.NewAdvisor(op), settings),
		renderer: pngsink.NewRenderer(theme),
	}
	intp.completer = newCompleter(ranger.Keys)
	intp.refreshCompletions()
	return intp
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			continue
		}
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op codes of commands
const (
	QUIT int = iota
	HELP
	SET
	SHOW
	GRID
	PNG
	THEME
	SOURCE
	GLYPHS
	SIZE
)

var commandNames = map[string]int{
	"quit":   QUIT,
	"help":   HELP,
	"set":    SET,
	"show":   SHOW,
	"grid":   GRID,
	"png":    PNG,
	"theme":  THEME,
	"source": SOURCE,
	"glyphs": GLYPHS,
	"size":   SIZE,
}

// Command is a parsed input line.
type Command struct {
	code int
	args []string
	rest string // input after the first argument, used as a setting value
}

func parseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{code: HELP}, nil
	}
	code, ok := commandNames[strings.ToLower(fields[0])]
	if !ok {
		return Command{}, core.Error(core.EINVALID, "unknown command %q, try 'help'", fields[0])
	}
	cmd := Command{code: code, args: fields[1:]}
	if code == SET {
		if len(cmd.args) == 0 {
			return Command{}, core.Error(core.EINVALID, "usage: set <key> [value]")
		}
		rest := strings.TrimSpace(line)
		rest = strings.TrimSpace(rest[len(fields[0]):])
		cmd.rest = strings.TrimSpace(rest[len(fields[1]):])
	}
	tracer().Debugf("parse command = %v", cmd)
	return cmd, nil
}

func (intp *Intp) execute(cmd Command) (bool, error) {
	switch cmd.code {
	case QUIT:
		return true, nil
	case HELP:
		help()
	case SET:
		if err := intp.ctrl.Set(cmd.args[0], cmd.rest); err != nil {
			return false, err
		}
		if _, err := intp.ctrl.Refresh(); err != nil {
			return false, err
		}
		intp.refreshCompletions()
		pterm.Printfln("%s = %s", cmd.args[0], intp.ctrl.Resolved().Value(cmd.args[0]))
	case SHOW:
		return false, intp.showSettings()
	case GRID:
		return false, intp.showGrid()
	case PNG:
		filename := "spaceranger.png"
		if len(cmd.args) > 0 {
			filename = cmd.args[0]
		}
		return false, intp.writePNG(filename)
	case THEME:
		if len(cmd.args) == 0 {
			return false, core.Error(core.EINVALID, "usage: theme light|dark")
		}
		theme, err := pngsink.ParseTheme(cmd.args[0])
		if err != nil {
			return false, err
		}
		intp.renderer.Colors = pngsink.Palette(theme)
	case SOURCE:
		if len(cmd.args) < 2 {
			return false, core.Error(core.EINVALID, "usage: source <column> <row>")
		}
		col, err1 := strconv.Atoi(cmd.args[0])
		row, err2 := strconv.Atoi(cmd.args[1])
		if err1 != nil || err2 != nil {
			return false, core.Error(core.EINVALID, "column and row have to be numbers")
		}
		if _, err := intp.ctrl.Refresh(); err != nil {
			return false, err
		}
		src, ok := intp.ctrl.SourceAt(col, row)
		if !ok {
			pterm.Printfln("no source at (%d,%d)", col, row)
			break
		}
		pterm.Printfln("source %q at %s", src.Name, src.Location)
	case SIZE:
		if len(cmd.args) == 0 {
			return false, core.Error(core.EINVALID, "usage: size <dimension>, e.g. 'size 72pt'")
		}
		d, err := dimen.ParseDimen(cmd.args[0])
		if err != nil {
			return false, err
		}
		if d <= 0 {
			return false, core.Error(core.EINVALID, "size has to be positive")
		}
		intp.ctrl.Metrics = gridlayout.MetricsFor(d.Points())
		intp.ctrl.Invalidate(ranger.DirtyUpdate)
		pterm.Printfln("point size = %.1fbp", d.Points())
	case GLYPHS:
		prefix := ""
		if len(cmd.args) > 0 {
			prefix = cmd.args[0]
		}
		names := candidates(intp.completer.glyphs, prefix)
		pterm.Printfln("%d glyphs: %s", len(names), strings.Join(names, " "))
	}
	return false, nil
}

func (intp *Intp) showSettings() error {
	s, resolved := intp.ctrl.Settings(), intp.ctrl.Resolved()
	data := pterm.TableData{{"Key", "Value", "Resolved"}}
	for _, key := range ranger.Keys {
		data = append(data, []string{key, s.Value(key), resolved.Value(key)})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (intp *Intp) showGrid() error {
	frame, err := intp.ctrl.Refresh()
	if err != nil {
		return err
	}
	data := pterm.TableData{{"Cell", "Location", "Border", "Glyph", "Unsmooth"}}
	for _, c := range frame.Cells {
		glyph := "-"
		if c.Glyph != nil {
			glyph = fmt.Sprintf("%.0f units", c.Glyph.Width)
		}
		data = append(data, []string{
			fmt.Sprintf("%d,%d", c.Column, c.Row),
			strings.ReplaceAll(c.Label, "\n", ", "),
			c.Border.String(),
			glyph,
			unsmooth(c.Markers),
		})
	}
	if err = pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	pterm.Printfln("canvas %.0f × %.0f, glyphs %v", frame.Width(), frame.Height(), frame.GlyphNames)
	if len(frame.Incompatible) > 0 {
		pterm.Printfln("incompatible: %v", frame.Incompatible)
	}
	return nil
}

// unsmooth summarizes markers as their count and the largest deviation.
func unsmooth(markers []ranger.Marker) string {
	if len(markers) == 0 {
		return "-"
	}
	worst := 0.0
	for _, m := range markers {
		worst = max(worst, m.Alpha)
	}
	return fmt.Sprintf("%d (max %s)", len(markers), percent.FromFraction(worst))
}

func (intp *Intp) writePNG(filename string) error {
	frame, err := intp.ctrl.Refresh()
	if err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot create %s", filename)
	}
	defer f.Close()
	if err = intp.renderer.WritePNG(f, frame); err != nil {
		return err
	}
	pterm.Info.Printfln("wrote %d cells to %s", len(frame.Cells), filename)
	return nil
}

func (intp *Intp) refreshCompletions() {
	discrete := intp.ctrl.Resolved().DiscreteLocation
	intp.completer.setGlyphs(intp.op.GlyphNames(discrete))
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	set <key> <value>   change a setting, e.g. 'set x-count 7' or 'set text /H/O'
	show                list settings
	grid                list the cells of the grid
	png [file]          render the grid to a PNG file
	theme light|dark    switch the appearance of PNG output
	source <col> <row>  show the source at a cell
	glyphs [prefix]     list glyph names
	size <dimension>    set the glyph size, e.g. 'size 72pt'
	quit                leave
	`)
}
