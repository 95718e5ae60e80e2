package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureLoggingWithOptions(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "shadowmap-test",
		JSON:      true,
		MinLevel:  slog.LevelDebug,
		Output:    &buf,
	})

	Get(t.Context()).Debug("hello", "entries", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "shadowmap-test", record["subsystem"])
	assert.InDelta(t, 3, record["entries"], 0)

	buf.Reset()
	Get(WithSubsystem(t.Context(), "override")).Info("again")
	assert.Contains(t, buf.String(), `"subsystem":"override"`)

	buf.Reset()
	Get(WithMuted(t.Context(), true)).Error("dropped")
	assert.Empty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warning", want: slog.LevelWarn},
		{in: " error ", want: slog.LevelError},
		{in: "loud", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidLevel)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	injected := slogt.New(t)
	ctx := WithLogger(t.Context(), injected)

	got := Get(nil, ctx) //nolint:staticcheck
	require.NotNil(t, got)
	got.Info("routed through t.Log")

	assert.Same(t, nullLogger, Get(WithMuted(ctx, true)))
}
