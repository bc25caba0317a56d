package main

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/viant/afs"

	"github.com/pietv/lineup/internal/line"
)

var (
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrSourceUnreadable  = errors.New("source unreadable")
	ErrNoValidRecords    = errors.New("no valid records")
)

type Lineup struct {
	Source string

	Waiting line.Queue
	Missed  line.Stack

	fs  afs.Service
	log *logrus.Logger
}

func New(source string, options ...func(*Lineup)) *Lineup {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	l := &Lineup{
		Source: source,
		fs:     afs.New(),
		log:    discard,
	}
	for _, o := range options {
		o(l)
	}
	return l
}

func WithLogger(logger *logrus.Logger) func(*Lineup) {
	return func(l *Lineup) {
		l.log = logger
	}
}

// Close releases whatever is still held in either line.
func (l *Lineup) Close() {
	if n := l.Waiting.Len() + l.Missed.Len(); n > 0 {
		l.log.Debugf("releasing %d unserved records", n)
	}
	l.Waiting.Clear()
	l.Missed.Clear()
}

// location turns a plain local path into an absolute one;
// anything carrying a scheme goes to afs unchanged.
func (l *Lineup) location() string {
	if strings.Contains(l.Source, "://") {
		return l.Source
	}
	if abs, err := filepath.Abs(l.Source); err == nil {
		return abs
	}
	return l.Source
}
