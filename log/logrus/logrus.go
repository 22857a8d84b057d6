// Package logrus adapts a logrus entry to hoard.Logger.
package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/ayvens/hoard"
)

type Logger struct{ E *logrus.Entry }

var _ hoard.Logger = Logger{}

func (l Logger) Debug(msg string, f hoard.Fields) { l.E.WithFields(logrus.Fields(f)).Debug(msg) }
func (l Logger) Info(msg string, f hoard.Fields)  { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l Logger) Warn(msg string, f hoard.Fields)  { l.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (l Logger) Error(msg string, f hoard.Fields) { l.E.WithFields(logrus.Fields(f)).Error(msg) }
