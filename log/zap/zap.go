// Package zap adapts a zap logger to hoard.Logger.
package zap

import (
	"go.uber.org/zap"

	"github.com/ayvens/hoard"
)

type Logger struct{ L *zap.Logger }

var _ hoard.Logger = Logger{}

func (z Logger) Debug(msg string, f hoard.Fields) { z.L.Debug(msg, zf(f)...) }
func (z Logger) Info(msg string, f hoard.Fields)  { z.L.Info(msg, zf(f)...) }
func (z Logger) Warn(msg string, f hoard.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z Logger) Error(msg string, f hoard.Fields) { z.L.Error(msg, zf(f)...) }

func zf(f hoard.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}
