/*
Command spaceranger is an interactive explorer for variable font design
spaces. It builds a design space from Go fonts (or fonts given by the user),
renders grids of interpolated glyphs into PNG files and lets the user tune
grid settings from a REPL.

	spaceranger -font DejaVuSans.ttf -trace Debug

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/spaceranger/backend/pngsink"
	"github.com/npillmayer/spaceranger/engine/masters"
	"github.com/npillmayer/spaceranger/engine/ranger"
	"github.com/pterm/pterm"
)

// tracer traces with key 'spaceranger.cli'
func tracer() tracing.Trace {
	return tracing.Select("spaceranger.cli")
}

var traceKeys = []string{
	"cli", "designspace", "outline", "sampling", "compile", "smoothness",
	"gridlayout", "rules", "masters", "textinput", "ranger", "pngsink",
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Upright master font (default Go Regular)")
	italicname := flag.String("italic", "", "Italic master font (default Go Italic)")
	appearance := flag.String("appearance", "light", "Appearance of PNG output [light|dark]")
	dpi := flag.Float64("dpi", 72, "Resolution of PNG output")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace.spaceranger."+key] = *tlevel
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	pterm.Info.Println("Welcome to SpaceRanger")
	tracer().Infof("Trace level is %s", *tlevel)
	theme, err := pngsink.ParseTheme(*appearance)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	//
	// load masters and set up the design space
	upright, err := loadMaster("Upright", *fontname, goRegular)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(4)
	}
	italic, err := loadMaster("Italic", *italicname, goItalic)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(4)
	}
	ds, fonts := demoSpace(upright, italic)
	op, err := masters.NewOperator(ds, fonts, demoRules())
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(4)
	}
	//
	// set up REPL
	intp := newIntp(op, ranger.DefaultSettings(), theme)
	intp.renderer.SetDPI(*dpi)
	repl, err := readline.NewEx(&readline.Config{
		Prompt:       "sr > ",
		AutoComplete: intp.completer,
	})
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp.repl = repl
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
