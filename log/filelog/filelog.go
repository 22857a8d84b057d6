// Package filelog builds a dual-destination zap logger: colored lines on
// the console, plain lines appended to a log file, with one shared level
// floor and optional per-module overrides. Modules are zap logger names;
// an override applies to every logger whose name starts with the module
// prefix.
package filelog

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultTimeLayout = "2006-01-02 15:04:05.000"

type Config struct {
	// Path of the log file; created if absent, appended otherwise.
	Path string

	// Level is the default floor for all modules. The zero value is
	// zapcore.InfoLevel.
	Level zapcore.Level

	// Modules maps a logger-name prefix to its own level floor.
	Modules map[string]zapcore.Level

	// TimeLayout for line timestamps; defaults to "2006-01-02 15:04:05.000".
	TimeLayout string

	// Console overrides the console destination (defaults to os.Stdout).
	Console io.Writer
}

// Logger owns the log file and the root zap logger.
type Logger struct {
	z    *zap.Logger
	file *os.File
}

func New(cfg Config) (*Logger, error) {
	f, err := os.OpenFile(cfg.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	layout := cfg.TimeLayout
	if layout == "" {
		layout = defaultTimeLayout
	}

	console := cfg.Console
	if console == nil {
		console = os.Stdout
	}

	tee := zapcore.NewTee(
		zapcore.NewCore(encoder(layout, true), zapcore.AddSync(console), zapcore.DebugLevel),
		zapcore.NewCore(encoder(layout, false), zapcore.AddSync(f), zapcore.DebugLevel),
	)
	core := &moduleCore{
		inner:   tee,
		base:    cfg.Level,
		modules: cfg.Modules,
		min:     minLevel(cfg.Level, cfg.Modules),
	}
	return &Logger{z: zap.New(core), file: f}, nil
}

// Zap returns the root logger.
func (l *Logger) Zap() *zap.Logger { return l.z }

// Module returns a named logger subject to that module's level floor.
func (l *Logger) Module(name string) *zap.Logger { return l.z.Named(name) }

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	_ = l.z.Sync() // stdout sync may fail on some platforms; the file matters
	return l.file.Close()
}

func encoder(layout string, colored bool) zapcore.Encoder {
	lvl := zapcore.CapitalLevelEncoder
	if colored {
		lvl = zapcore.CapitalColorLevelEncoder
	}
	return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.TimeEncoderOfLayout(layout),
		EncodeLevel:    lvl,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	})
}

// moduleCore filters by the entry's logger name before handing the entry to
// the underlying tee. Longest matching prefix wins, base level otherwise.
type moduleCore struct {
	inner   zapcore.Core
	base    zapcore.Level
	modules map[string]zapcore.Level
	min     zapcore.Level
}

func (c *moduleCore) Enabled(l zapcore.Level) bool { return l >= c.min }

func (c *moduleCore) With(fields []zapcore.Field) zapcore.Core {
	cp := *c
	cp.inner = c.inner.With(fields)
	return &cp
}

func (c *moduleCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if ent.Level < c.levelFor(ent.LoggerName) {
		return ce
	}
	return ce.AddCore(ent, c)
}

func (c *moduleCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	return c.inner.Write(ent, fields)
}

func (c *moduleCore) Sync() error { return c.inner.Sync() }

func (c *moduleCore) levelFor(name string) zapcore.Level {
	best := -1
	lvl := c.base
	for mod, l := range c.modules {
		if len(mod) > best && len(name) >= len(mod) && name[:len(mod)] == mod {
			best = len(mod)
			lvl = l
		}
	}
	return lvl
}

func minLevel(base zapcore.Level, modules map[string]zapcore.Level) zapcore.Level {
	min := base
	for _, lvl := range modules {
		if lvl < min {
			min = lvl
		}
	}
	return min
}
