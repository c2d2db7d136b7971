package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tobionecenobi/SEB/errors"
)

// TestKindSurvivesWrapping verifies the kind is found through several frames.
func TestKindSurvivesWrapping(t *testing.T) {
	err := errors.Wrapf(errors.ErrMissingSampleLabel, "reference %q", "P.contour")
	err = errors.Wrapf(err, "World.Link(%q, %q)", "B.end1", "P.contour")

	assert.True(t, errors.Is(err, errors.ErrMissingSampleLabel))
	assert.Equal(t, errors.ErrMissingSampleLabel, errors.Kind(err))
	assert.False(t, errors.Is(err, errors.ErrBadName))
}

// TestKindOfForeignError verifies Kind returns nil for errors without a kind.
func TestKindOfForeignError(t *testing.T) {
	assert.Nil(t, errors.Kind(nil))
	assert.Nil(t, errors.Kind(errors.New("something else")))
}

// TestTrailOrder verifies frames are reported outermost first.
func TestTrailOrder(t *testing.T) {
	err := errors.Wrapf(errors.ErrUnknownName, "name %q", "X")
	err = errors.Wrap(err, "getGraphID")
	err = errors.Wrap(err, "World.Add")

	trail := errors.Trail(err)
	require.Len(t, trail, 4)
	assert.Equal(t, "World.Add", trail[0])
	assert.Equal(t, "getGraphID", trail[1])
	assert.Equal(t, `name "X"`, trail[2])
	assert.Equal(t, "unknown name", trail[3])
}
