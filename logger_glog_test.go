package statewalk

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-logger/glog"
)

type glogCompatLogger struct {
	logger glog.Logger
}

func (l glogCompatLogger) Trace(msg string, args ...any) { l.logger.Trace(msg, args...) }
func (l glogCompatLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l glogCompatLogger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l glogCompatLogger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l glogCompatLogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }
func (l glogCompatLogger) Fatal(msg string, args ...any) { l.logger.Fatal(msg, args...) }

func (l glogCompatLogger) WithContext(ctx context.Context) Logger {
	if l.logger == nil {
		return NewFmtLogger(nil).WithContext(ctx)
	}
	return glogCompatLogger{logger: l.logger.WithContext(ctx)}
}

func (l glogCompatLogger) WithFields(fields map[string]any) Logger {
	if l.logger == nil {
		return NewFmtLogger(nil).WithFields(fields)
	}
	if fl, ok := l.logger.(glog.FieldsLogger); ok {
		return glogCompatLogger{logger: fl.WithFields(fields)}
	}
	return l
}

func TestGlogCompatibilityDuringGeneration(t *testing.T) {
	buf := &bytes.Buffer{}
	base := glog.NewLogger(
		glog.WithWriter(buf),
		glog.WithLoggerTypeJSON(),
		glog.WithLevel("trace"),
	)
	logger := glogCompatLogger{logger: base}

	paths, err := MakePaths(newLinearMachine(), WithLogger(logger))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("expected 1 path, got %d", len(paths))
	}
	out := buf.String()
	if !strings.Contains(out, "path generated") {
		t.Fatalf("expected generation log lines, got %q", out)
	}
	if !strings.Contains(out, "path set deduplicated") {
		t.Fatalf("expected dedup log line, got %q", out)
	}
}

func TestFmtLoggerFields(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewFmtLogger(buf).WithFields(map[string]any{"machine": "linear"})
	logger.Info("generated %d paths", 3)

	out := buf.String()
	if !strings.Contains(out, "generated 3 paths") {
		t.Fatalf("expected formatted message, got %q", out)
	}
	if !strings.Contains(out, "machine=linear") {
		t.Fatalf("expected structured fields, got %q", out)
	}
}

func TestNoopLoggerIsDefault(t *testing.T) {
	// nil logger resolves to the noop logger and generation stays silent
	o, err := resolveOptions()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := o.logger.(NoopLogger); !ok {
		t.Fatalf("expected NoopLogger default, got %T", o.logger)
	}
}
