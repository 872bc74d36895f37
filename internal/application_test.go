package application

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
)

func testConfig(t *testing.T, variant string) *config.Config {
	t.Helper()

	return &config.Config{
		LogLevel:   "info",
		Variant:    variant,
		OutputPath: filepath.Join(t.TempDir(), "graph.js"),
		HTTPPort:   "0",
	}
}

func TestRunApp(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	t.Run("Solves classic and writes the graph", func(t *testing.T) {
		// Given: a config for the classic variant
		conf := testConfig(t, "classic")
		var out bytes.Buffer

		// When: running the app
		err := RunApp(logger, conf, &out)

		// Then: the root is printed as a draw and the graph file exists
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Turn: X")
		assert.Contains(t, out.String(), "draw")

		raw, err := os.ReadFile(conf.OutputPath)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(raw), "var graph = "))
	})

	t.Run("Error on unknown variant", func(t *testing.T) {
		// Given: a config naming an unknown variant
		conf := testConfig(t, "chess")

		// When: running the app
		err := RunApp(logger, conf, io.Discard)

		// Then: ErrInvalidVariant is surfaced
		require.ErrorIs(t, err, apperror.ErrInvalidVariant)
	})

	t.Run("Error on redis enabled without a host", func(t *testing.T) {
		// Given: redis switched on but the host left empty
		conf := testConfig(t, "classic")
		conf.Redis = config.Redis{Enabled: true, Port: "6379"}

		// When: running the app
		err := RunApp(logger, conf, io.Discard)

		// Then: ErrAddrNotFound is returned before any connection attempt
		require.ErrorIs(t, err, ErrAddrNotFound)
	})
}
