package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	wkhtmltopdf "github.com/kasparsaleksejevs/go-wkhtmltopdf"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	env := DefaultEnv()
	err := run(os.Args, env, func(executable string) pdfRenderer {
		if executable != "" {
			return wkhtmltopdf.New(wkhtmltopdf.WithExecutablePath(executable))
		}
		return wkhtmltopdf.New()
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}
