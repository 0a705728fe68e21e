package c64

import (
	"log"
	"os"
)

// logger is a per-chip prefixed wrapper around the standard logger,
// following the "[component] " prefix convention used elsewhere in the
// retrieval pack for per-connection loggers.
type logger struct {
	*log.Logger
}

func newLogger(component string) *logger {
	return &logger{log.New(os.Stderr, "["+component+"] ", log.LstdFlags)}
}
