package app

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"periodic-tutor/internal/config"
	"periodic-tutor/internal/elements"
	"periodic-tutor/internal/gui"
	"periodic-tutor/internal/logger"

	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(dataPath string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Data.Path = dataPath
	return cfg
}

func TestNewApplication_LoadsBundledData(t *testing.T) {
	cfg := testConfig(filepath.Join("..", "..", "data", "elements.rdf"))

	application, err := newApplication(test.NewTempApp(t), cfg, nil)
	require.NoError(t, err)

	assert.NoError(t, application.LoadErr())
	assert.Equal(t, 118, application.Table().Len())
	assert.Equal(t, WindowTitle, application.Window().Title())
	assert.Equal(t, "Loaded 118 elements", application.Manager().StatusBar().Status())

	state, _ := application.Manager().State()
	assert.Equal(t, gui.StateIdle, state)
}

func TestNewApplication_MissingDataShowsEmptyGrid(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewZerolog(&buf, zerolog.DebugLevel)
	cfg := testConfig(filepath.Join(t.TempDir(), "missing.rdf"))

	application, err := newApplication(test.NewTempApp(t), cfg, log)
	require.NoError(t, err)

	var loadErr *elements.LoadError
	require.ErrorAs(t, application.LoadErr(), &loadErr)
	assert.Equal(t, cfg.Data.Path, loadErr.Path)

	assert.Equal(t, 0, application.Table().Len())
	assert.Equal(t, 118, application.Manager().CellCount())
	assert.True(t, strings.HasPrefix(application.Manager().StatusBar().Status(), "Element data unavailable: "))
	assert.Contains(t, buf.String(), "element load failed")
}

func TestNewApplication_InvalidConfig(t *testing.T) {
	cfg := testConfig("")

	_, err := newApplication(test.NewTempApp(t), cfg, nil)
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestLoadTable_MalformedFile(t *testing.T) {
	cfg := testConfig(filepath.Join("..", "elements", "testdata", "malformed.rdf"))

	table, err := LoadTable(cfg, logger.NoOpLogger{})
	require.Error(t, err)
	require.NotNil(t, table)
	assert.Equal(t, 0, table.Len())
}

func TestLifecycle_ShutdownOnce(t *testing.T) {
	test.NewTempApp(t)

	var buf bytes.Buffer
	log := logger.NewZerolog(&buf, zerolog.InfoLevel)
	lifecycle := NewLifecycle(gui.NewManager(elements.Empty(), nil), log)

	lifecycle.Shutdown()
	lifecycle.Shutdown()

	assert.True(t, lifecycle.IsShutdown())
	assert.Equal(t, 1, strings.Count(buf.String(), "shutdown sequence initiated"))
}
