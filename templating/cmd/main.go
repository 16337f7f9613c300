// Binary render_template expands {{NAME}} placeholders in a
// template using value files and explicit variables.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/byte4ever/byteutils/templating"
)

type arrayFlags []string

func (af *arrayFlags) String() string {
	return ""
}

func (af *arrayFlags) Set(value string) error {
	*af = append(*af, value)
	return nil
}

func main() {
	var (
		valuesFiles arrayFlags
		variable    arrayFlags
		output      string
		tpl         string
		executable  bool
		startTag    string
		endTag      string
	)

	flag.Var(
		&valuesFiles,
		"values_file",
		"Values file path: .json, .yaml or KEY VALUE lines (repeatable)",
	)

	flag.Var(
		&variable,
		"variable",
		"Variable in NAME=VALUE format (repeatable)",
	)

	flag.StringVar(
		&output, "output", "",
		"Output file path (stdout if empty)",
	)

	flag.StringVar(
		&tpl, "template", "",
		"Input template file path (stdin if empty)",
	)

	flag.BoolVar(
		&executable, "executable", false,
		"Set executable bit on output file",
	)

	flag.StringVar(
		&startTag, "start_tag", "{{",
		"Start tag for template placeholders",
	)

	flag.StringVar(
		&endTag, "end_tag", "}}",
		"End tag for template placeholders",
	)

	flag.Parse()

	en := templating.Engine{
		StartTag:   startTag,
		EndTag:     endTag,
		ValueFiles: valuesFiles,
	}

	if err := en.Expand(
		tpl, output, variable, executable,
	); err != nil {
		slog.Error("render_template", "error", err)
		os.Exit(1)
	}
}
