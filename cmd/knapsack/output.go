package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/katalvlaran/knapsack/internal/render"
	"github.com/katalvlaran/knapsack/knapsack"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var errColorMode = errors.New("color must be auto, always or never")

// outputFlags select how a result is printed.
type outputFlags struct {
	view   bool
	indent bool
	color  string
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.view, "view", false, "print a table instead of JSON")
	cmd.Flags().BoolVar(&o.indent, "indent", false, "indent JSON output")
	cmd.Flags().StringVar(&o.color, "color", "auto", "table colours: auto, always or never")
}

func (o *outputFlags) emit(w io.Writer, res *knapsack.Result) error {
	if o.view {
		color, err := useColor(w, o.color)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, render.View(res, color))
		return err
	}

	return o.write(w, render.Build(res))
}

func (o *outputFlags) write(w io.Writer, doc any) error {
	if o.indent {
		return render.WriteIndent(w, doc)
	}

	return render.Write(w, doc)
}

// fail prints the error document and hands err back for the exit status.
func (o *outputFlags) fail(w io.Writer, msg string, err error) error {
	_ = o.write(w, render.ErrorDocument{Code: http.StatusBadRequest, Error: msg})

	return err
}

// useColor resolves mode; auto colours only a terminal that does not set
// NO_COLOR.
func useColor(w io.Writer, mode string) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
	default:
		return false, errColorMode
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false, nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return false, nil
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
}
