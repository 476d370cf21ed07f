// Package logtest provides a logger that writes to a testing.TB.
package logtest

import (
	"testing"

	"github.com/abhinav/huffcode/internal/log"
	"go.abhg.dev/io/ioutil"
)

// NewLogger builds a logger at debug level that writes to t.
// Messages logged after the test finishes are discarded.
func NewLogger(t testing.TB) *log.Logger {
	return log.New(ioutil.TestLogWriter(t, ""), log.Debug)
}
