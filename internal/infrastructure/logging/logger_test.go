package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		debugOn   bool
		warningOn bool
	}{
		{name: "quiet shows warnings only", verbose: false, debugOn: false, warningOn: true},
		{name: "verbose shows debug", verbose: true, debugOn: true, warningOn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.verbose)
			require.NoError(t, err)
			defer func() { _ = logger.Sync() }()

			assert.Equal(t, tt.debugOn, logger.Core().Enabled(zapcore.DebugLevel))
			assert.Equal(t, tt.warningOn, logger.Core().Enabled(zapcore.WarnLevel))
		})
	}
}
