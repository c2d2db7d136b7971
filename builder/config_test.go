// Package builder contains unit tests for the configuration primitives
// (builderConfig, BuilderOption and the graph trace).
package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tobionecenobi/SEB/errors"
)

func mustName(t *testing.T, cfg builderConfig, prefix string, idx int) string {
	t.Helper()
	name, err := cfg.name(prefix, idx)
	require.NoError(t, err)
	return name
}

// TestConfigDefaults verifies the deterministic defaults.
func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Equal(t, "p7", mustName(t, cfg, "p", 7))
	assert.Equal(t, "", cfg.tag)
	assert.Equal(t, CenterName, cfg.hub)
	require.NotNil(t, cfg.trace)
	assert.Zero(t, cfg.trace.last)
}

// TestConfigOptions verifies that options apply in order, last wins.
func TestConfigOptions(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithSymbolIDs(), WithTag("poly"), WithHubName("core"))
	assert.Equal(t, "armB", mustName(t, cfg, "arm", 1))
	assert.Equal(t, "poly", cfg.tag)
	assert.Equal(t, "core", cfg.hub)

	cfg = newBuilderConfig(WithSymbolIDs(), WithDefaultIDs())
	assert.Equal(t, "arm3", mustName(t, cfg, "arm", 3))

	assert.Panics(t, func() { WithIDScheme(nil) })
	assert.Panics(t, func() { WithHubName("") })
}

// TestNames verifies that names fails as a whole on an exhausted scheme.
func TestNames(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithSymbolIDs())
	names, err := cfg.names("p", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"pA", "pB", "pC"}, names)

	names, err = cfg.names("p", 27)
	assert.Nil(t, names)
	assert.True(t, errors.Is(err, ErrNamesExhausted))
}

// TestTrace verifies graph bookkeeping across constructors.
func TestTrace(t *testing.T) {
	t.Parallel()

	tr := newBuilderConfig().trace
	tr.record(1, "A", "B")
	tr.record(2, "S")
	assert.Equal(t, 2, tr.last)

	gid, err := tr.graphOf("B")
	require.NoError(t, err)
	assert.Equal(t, 1, gid)

	_, err = tr.graphOf("Z")
	assert.True(t, errors.Is(err, ErrUnknownGraph))
}
