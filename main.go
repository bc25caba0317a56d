package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/integrii/flaggy"
	"github.com/sirupsen/logrus"
)

func main() {
	var debug bool

	flaggy.SetName("Lineup")
	flaggy.SetDescription("serves waiting and missed customers in turn")
	flaggy.DefaultParser.ShowHelpOnUnexpected = false

	flaggy.DefaultParser.AdditionalHelpPrepend = "Usage: lineup [FLAGS...] [FILE]"
	flaggy.Bool(&debug, "d", "debug", "Debug operation")

	flaggy.Parse()

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	if debug {
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.DebugLevel)
	}

	source, ok := inputSource(flaggy.TrailingArguments, os.Stdin, os.Stdout)
	if !ok {
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, source, os.Stdout, logger)
	cancel()
	os.Exit(code)
}

// inputSource takes the input location from the first argument or,
// failing that, asks for it on stdin. ok is false if nothing was entered.
func inputSource(args []string, stdin io.Reader, stdout io.Writer) (source string, ok bool) {
	if len(args) > 0 {
		return args[0], true
	}
	fmt.Fprintln(stdout, "enter input file name")
	if _, err := fmt.Fscan(stdin, &source); err != nil {
		return "", false
	}
	return source, true
}

func run(ctx context.Context, source string, stdout io.Writer, logger *logrus.Logger) int {
	l := New(source, WithLogger(logger))
	defer l.Close()

	if _, err := l.Load(ctx); err != nil {
		logger.WithError(err).Debug("load failed")
		fmt.Fprintln(stdout, "file open failed")
		return 1
	}
	if _, err := l.ServeAll(stdout); err != nil {
		logger.WithError(err).Error("writing serve order")
		return 1
	}
	return 0
}
