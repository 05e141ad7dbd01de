// Command collectivity-bench fills several containers through the same Insert and Len capabilities
// and reports how long each of them took.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/pflag"
	"gopkg.in/natefinch/lumberjack.v2"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logging"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	os.Exit(Main(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

var (
	colorName    = color.New(color.FgCyan, color.Bold)
	colorElapsed = color.New(color.FgGreen)
	colorError   = color.New(color.FgRed, color.Bold)
)

// Main runs the command and returns its exit code.
func Main(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	c, err := LoadConfig(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return cli.ExitCodeOK
	}
	if err != nil {
		_, _ = colorError.Fprintln(stderr, err.Error())
		return cli.ExitCodeBadRequest
	}
	if c.NoColor {
		color.NoColor = true
	}

	logger := &logging.Logger{Out: stderr}
	if c.LogFile != "" {
		lj := &lumberjack.Logger{Filename: c.LogFile, MaxSize: 10, MaxBackups: 3}
		defer lj.Close()
		logger.Out = lj
	}

	if err := Run(ctx, c, stdout, progressWriter(c, stderr), logger); err != nil {
		logger.Error(ctx, "benchmark failed", logging.ErrField(err))
		_, _ = colorError.Fprintln(stderr, err.Error())
		return cli.ExitCodeError
	}
	return cli.ExitCodeOK
}

// progressWriter returns nil when the progress bar should not be shown.
func progressWriter(c Config, stderr io.Writer) io.Writer {
	f, ok := stderr.(*os.File)
	if c.Quiet || !ok || !isatty.IsTerminal(f.Fd()) {
		return nil
	}
	return stderr
}

// Run benchmarks every configured container in order.
// When progress is nil, no progress bar is drawn.
func Run(ctx context.Context, c Config, out, progress io.Writer, logger *logging.Logger) error {
	metrics := NewMetrics()
	for _, name := range c.Containers {
		bar := newProgressBar(progress, c, name)
		var onProgress Progress
		if bar != nil {
			onProgress = func(delta int) { _ = bar.Add(delta) }
		}

		r, err := Bench(ctx, name, c.N, onProgress)
		if bar != nil {
			_ = bar.Finish()
		}
		if err != nil {
			return err
		}

		metrics.Observe(r)
		logger.Info(ctx, "container filled",
			logging.Field("container", r.Container),
			logging.Field("elapsed_ms", r.Elapsed.Milliseconds()),
			logging.Field("len", r.Len))
		_, _ = fmt.Fprintf(out, "%s: inserted in %s, len: %d\n",
			colorName.Sprintf("%-10s", r.Container),
			colorElapsed.Sprintf("%-15s", r.Elapsed),
			r.Len)
	}
	if c.MetricsFile != "" {
		if err := metrics.WriteFile(c.MetricsFile); err != nil {
			return fmt.Errorf("writing metrics file: %w", err)
		}
	}
	return nil
}

func newProgressBar(w io.Writer, c Config, name string) *progressbar.ProgressBar {
	if w == nil {
		return nil
	}
	return progressbar.NewOptions(c.N,
		progressbar.OptionSetDescription(name),
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionEnableColorCodes(!c.NoColor),
	)
}
