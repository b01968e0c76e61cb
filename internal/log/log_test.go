// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{name: "quiet", verbose: false, wantDebug: false},
		{name: "verbose", verbose: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(&buf, tt.verbose)

			l.Debugf("backend %s", "rsc")
			l.Infof("informational")
			l.Warnf("history unavailable: %v", "locked")
			_ = l.Sync()

			out := buf.String()
			assert.Contains(t, out, "WARN")
			assert.Contains(t, out, "history unavailable: locked")
			if tt.wantDebug {
				assert.Contains(t, out, "DEBUG")
				assert.Contains(t, out, "backend rsc")
				assert.Contains(t, out, "informational")
			} else {
				assert.NotContains(t, out, "backend rsc")
				assert.NotContains(t, out, "informational")
			}
		})
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Debugf("ignored %d", 1)
	l.Warnf("ignored %d", 2)
}
