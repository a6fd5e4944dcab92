package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/cedzoi/cedzoi/internal/cli"
	"github.com/cedzoi/cedzoi/internal/config"
	"github.com/cedzoi/cedzoi/internal/loader"
	"github.com/cedzoi/cedzoi/internal/logger"
	"github.com/cedzoi/cedzoi/internal/theme"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	contentFlag := flag.String("content", cfg.ContentURL, "content location: base URL of a studyd host or a local content directory")
	themeFlag := flag.String("theme", cfg.Theme, "color theme: light or dark (default follows the terminal)")
	verbose := flag.Bool("verbose", cfg.Verbose, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), cli.ErrUsage)
		flag.PrintDefaults()
	}
	flag.Parse()

	log := logger.New(logger.WithPrefix("[cedzoi] "), logger.WithVerbose(*verbose))

	src, err := loader.NewSource(*contentFlag)
	if err != nil {
		log.Fatal("content source %s: %v", *contentFlag, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = theme.WithPreference(ctx, theme.Init(*themeFlag, terminalIsDark()))

	app := &cli.App{
		Loader: loader.New(src, log),
		In:     os.Stdin,
		Out:    os.Stdout,
		Log:    log,
		Color:  os.Getenv("NO_COLOR") == "" && isatty.IsTerminal(os.Stdout.Fd()),
	}
	if err := app.Run(ctx, flag.Args()); err != nil {
		if errors.Is(err, cli.ErrUsage) {
			flag.Usage()
			os.Exit(2)
		}
		log.Fatal("%v", err)
	}
}

// terminalIsDark reads the COLORFGBG hint ("fg;bg") set by many terminals.
func terminalIsDark() bool {
	v := os.Getenv("COLORFGBG")
	i := strings.LastIndex(v, ";")
	if i < 0 {
		return false
	}
	switch v[i+1:] {
	case "0", "1", "2", "3", "4", "5", "6", "8":
		return true
	}
	return false
}
