package campmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campCrew/utils"
)

func TestAddSpot(t *testing.T) {
	t.Run("converts pixel click to percentages", func(t *testing.T) {
		spots, err := AddSpot(nil, 50, 200, 200, 400)
		require.NoError(t, err)
		require.Len(t, spots, 1)
		assert.Equal(t, 25.0, spots[0].X)
		assert.Equal(t, 50.0, spots[0].Y)
		assert.Nil(t, spots[0].AssignedTo)
	})

	t.Run("first spot is number 1", func(t *testing.T) {
		spots, err := AddSpot(nil, 10, 10, 100, 100)
		require.NoError(t, err)
		assert.Equal(t, 1, spots[0].Number)
	})

	t.Run("next number is max plus one", func(t *testing.T) {
		existing := []Spot{{Number: 1}, {Number: 3}}
		spots, err := AddSpot(existing, 10, 10, 100, 100)
		require.NoError(t, err)
		require.Len(t, spots, 3)
		assert.Equal(t, 4, spots[2].Number)
	})

	t.Run("rejects zero image dimensions", func(t *testing.T) {
		_, err := AddSpot(nil, 10, 10, 0, 100)
		assert.ErrorIs(t, err, ErrBadImageSize)
	})
}

func TestAssignSpot(t *testing.T) {
	spots := []Spot{{Number: 1}, {Number: 2}}

	t.Run("assigns a member", func(t *testing.T) {
		updated, err := AssignSpot(spots, 2, utils.ToPointer("memberA"))
		require.NoError(t, err)
		assert.Equal(t, "memberA", *updated[1].AssignedTo)
		assert.Nil(t, updated[0].AssignedTo)
		// input untouched
		assert.Nil(t, spots[1].AssignedTo)
	})

	t.Run("clears with nil", func(t *testing.T) {
		assigned, err := AssignSpot(spots, 1, utils.ToPointer("memberA"))
		require.NoError(t, err)
		cleared, err := AssignSpot(assigned, 1, nil)
		require.NoError(t, err)
		assert.Nil(t, cleared[0].AssignedTo)
	})

	t.Run("same member may hold two spots", func(t *testing.T) {
		one, err := AssignSpot(spots, 1, utils.ToPointer("memberA"))
		require.NoError(t, err)
		two, err := AssignSpot(one, 2, utils.ToPointer("memberA"))
		require.NoError(t, err)
		assert.Equal(t, "memberA", *two[0].AssignedTo)
		assert.Equal(t, "memberA", *two[1].AssignedTo)
	})

	t.Run("unknown number", func(t *testing.T) {
		_, err := AssignSpot(spots, 9, nil)
		assert.ErrorIs(t, err, ErrSpotNotFound)
	})
}

func TestRemoveSpot(t *testing.T) {
	t.Run("keeps remaining numbers", func(t *testing.T) {
		spots := []Spot{{Number: 1}, {Number: 2}, {Number: 3}}
		updated, err := RemoveSpot(spots, 2)
		require.NoError(t, err)
		require.Len(t, updated, 2)
		assert.Equal(t, 1, updated[0].Number)
		assert.Equal(t, 3, updated[1].Number)
	})

	t.Run("unknown number", func(t *testing.T) {
		_, err := RemoveSpot([]Spot{{Number: 1}}, 2)
		assert.ErrorIs(t, err, ErrSpotNotFound)
	})
}

func TestSpotByNumber(t *testing.T) {
	m := Map{Spots: []Spot{{Number: 7, AssignedTo: utils.ToPointer("memberA")}}}

	spot := m.SpotByNumber(7)
	require.NotNil(t, spot)
	assert.Equal(t, "memberA", *spot.AssignedTo)

	assert.Nil(t, m.SpotByNumber(8))
}
