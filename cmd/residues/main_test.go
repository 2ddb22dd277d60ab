package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRun_MatchesGolden(t *testing.T) {
	want, err := os.ReadFile(filepath.Join("testdata", "default_moduli.golden"))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out, zap.NewNop()))
	assert.Equal(t, string(want), out.String())
}

func TestRootCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name: "no arguments",
			args: []string{},
		},
		{
			name:    "positional argument rejected",
			args:    []string{"97"},
			wantErr: true,
		},
		{
			name:    "unknown flag rejected",
			args:    []string{"--modulus", "97"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cmd := newRootCmd(zap.NewNop())
			cmd.SetOut(&out)
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tt.args)

			err := cmd.ExecuteContext(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, out.String())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 10, bytes.Count(out.Bytes(), []byte("\n")))
			assert.True(t, bytes.HasPrefix(out.Bytes(), []byte("Quadratic residues mod 256: [0, 1, 4, 9, ")))
		})
	}
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := run(ctx, &out, zap.NewNop())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger()
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.DebugLevel), "debug events should stay hidden")
	assert.True(t, logger.Core().Enabled(zap.ErrorLevel))
}
