package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/goliatone/go-logger/glog"
	"github.com/goliatone/go-statewalk"
	"github.com/goliatone/go-statewalk/fsm"
)

var cli struct {
	Gen GenCmd `cmd:"" help:"Generate test paths from a machine definition."`
}

// GenCmd loads a machine definition, generates its path set and prints one
// description per line.
type GenCmd struct {
	Machine   string `arg:"" type:"existingfile" help:"YAML or JSON machine definition file."`
	MaxLength int    `name:"max-length" default:"10" help:"Hard ceiling on path length, initial segment included."`
	All       bool   `help:"Print every path, not only those ending in a final state."`
	NoDedupe  bool   `name:"no-dedupe" help:"Keep paths subsumed by longer ones."`
	Verbose   bool   `short:"v" help:"Enable debug logging."`
}

func (c *GenCmd) Run() error {
	level := "info"
	if c.Verbose {
		level = "debug"
	}
	logger := glogLogger{logger: glog.NewLogger(
		glog.WithWriter(os.Stderr),
		glog.WithLevel(level),
	)}

	data, err := os.ReadFile(c.Machine)
	if err != nil {
		return err
	}
	def, err := fsm.Parse(data)
	if err != nil {
		return err
	}
	machine, err := fsm.New(def)
	if err != nil {
		return err
	}

	opts := []statewalk.Option{
		statewalk.WithMaxLength(c.MaxLength),
		statewalk.WithLogger(logger),
	}
	if c.All {
		opts = append(opts, statewalk.WithPathFilter(func(*statewalk.Path) bool { return true }))
	}
	if c.NoDedupe {
		opts = append(opts, statewalk.WithoutDeduplication())
	}

	paths, err := statewalk.MakePaths(machine, opts...)
	if err != nil {
		return err
	}
	for _, path := range paths {
		fmt.Println(path.Description())
	}
	logger.Info("generated %d paths for machine %s", len(paths), def.ID)
	return nil
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("statewalk"),
		kong.Description("Generate test paths from finite-state machine models."),
	)
	ctx.FatalIfErrorf(ctx.Run())
}

// glogLogger adapts glog.Logger to the statewalk logging contract.
type glogLogger struct {
	logger glog.Logger
}

func (l glogLogger) Trace(msg string, args ...any) { l.logger.Trace(msg, args...) }
func (l glogLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l glogLogger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l glogLogger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l glogLogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }
func (l glogLogger) Fatal(msg string, args ...any) { l.logger.Fatal(msg, args...) }

func (l glogLogger) WithContext(ctx context.Context) statewalk.Logger {
	if l.logger == nil {
		return statewalk.NewFmtLogger(nil).WithContext(ctx)
	}
	return glogLogger{logger: l.logger.WithContext(ctx)}
}

func (l glogLogger) WithFields(fields map[string]any) statewalk.Logger {
	if l.logger == nil {
		return statewalk.NewFmtLogger(nil).WithFields(fields)
	}
	if fl, ok := l.logger.(glog.FieldsLogger); ok {
		return glogLogger{logger: fl.WithFields(fields)}
	}
	return l
}
