package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campCrew/utils"
)

func openSlot(id string) Slot {
	return Slot{ID: id}
}

func takenSlot(id, uid string) Slot {
	return Slot{ID: id, AssignedTo: utils.ToPointer(uid)}
}

func preAssignedSlot(id, uid string) Slot {
	return Slot{ID: id, AssignedTo: utils.ToPointer(uid), PreAssigned: true}
}

func TestClaim_OpenSlot(t *testing.T) {
	slots := []Slot{openSlot("a"), openSlot("b"), preAssignedSlot("c", "memberM")}

	updated, err := Claim(slots, "a", "memberN")
	require.NoError(t, err)

	require.Len(t, updated, 3)
	require.NotNil(t, updated[0].AssignedTo)
	assert.Equal(t, "memberN", *updated[0].AssignedTo)
	// Every other slot comes back unchanged
	assert.Equal(t, slots[1], updated[1])
	assert.Equal(t, slots[2], updated[2])
	// The input slice is untouched
	assert.Nil(t, slots[0].AssignedTo)
}

func TestClaim_PreAssignedSlot(t *testing.T) {
	slots := []Slot{preAssignedSlot("a", "memberM")}

	_, err := Claim(slots, "a", "memberN")
	assert.ErrorIs(t, err, ErrSlotPreAssigned)
	assert.Equal(t, "memberM", *slots[0].AssignedTo)
}

func TestClaim_EmptyPreAssignedSlot(t *testing.T) {
	// A pre-assigned slot stays closed to self-service even when empty.
	slots := []Slot{{ID: "a", PreAssigned: true}}

	_, err := Claim(slots, "a", "memberN")
	assert.ErrorIs(t, err, ErrSlotPreAssigned)
}

func TestClaim_TakenSlot(t *testing.T) {
	slots := []Slot{takenSlot("a", "memberA")}

	_, err := Claim(slots, "a", "memberB")
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, "memberA", *slots[0].AssignedTo)
}

func TestClaim_UnknownSlot(t *testing.T) {
	slots := []Slot{openSlot("a")}

	_, err := Claim(slots, "nope", "memberN")
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestClaim_LostRace(t *testing.T) {
	// Two sessions read the same open slot. The first claim commits; the
	// transaction re-runs the second claim against fresh state, which must
	// fail instead of overwriting the winner.
	slots := []Slot{openSlot("a")}

	afterA, err := Claim(slots, "a", "memberX")
	require.NoError(t, err)

	_, err = Claim(afterA, "a", "memberY")
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, "memberX", *afterA[0].AssignedTo)
}

func TestRelease_ByHolder(t *testing.T) {
	slots := []Slot{takenSlot("a", "memberA"), openSlot("b")}

	updated, err := Release(slots, "a", "memberA")
	require.NoError(t, err)
	assert.Nil(t, updated[0].AssignedTo)
	assert.Equal(t, slots[1], updated[1])
}

func TestRelease_ByOtherMember(t *testing.T) {
	slots := []Slot{takenSlot("a", "memberA")}

	_, err := Release(slots, "a", "memberB")
	assert.ErrorIs(t, err, ErrNotSlotHolder)
	assert.Equal(t, "memberA", *slots[0].AssignedTo)
}

func TestRelease_EmptySlot(t *testing.T) {
	slots := []Slot{openSlot("a")}

	_, err := Release(slots, "a", "memberA")
	assert.ErrorIs(t, err, ErrNotSlotHolder)
}

func TestRelease_PreAssignedSlot(t *testing.T) {
	slots := []Slot{preAssignedSlot("a", "memberM")}

	_, err := Release(slots, "a", "memberM")
	assert.ErrorIs(t, err, ErrSlotPreAssigned)
}

func TestFilled(t *testing.T) {
	tests := []struct {
		name  string
		slots []Slot
		want  int
	}{
		{"no slots", nil, 0},
		{"all open", []Slot{openSlot("a"), openSlot("b")}, 0},
		{"mixed", []Slot{openSlot("a"), takenSlot("b", "m"), preAssignedSlot("c", "n")}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filled(tt.slots)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, got, len(tt.slots))
		})
	}
}

func TestSignUpCancelLifecycle(t *testing.T) {
	// Two open slots plus one pre-assigned to member M: 1/3 filled before a
	// sign-up, 2/3 after member N claims, back to 1/3 after N cancels.
	s := Shift{Slots: []Slot{openSlot("a"), openSlot("b"), preAssignedSlot("c", "memberM")}}
	assert.Equal(t, 1, s.Filled())

	claimed, err := Claim(s.Slots, "a", "memberN")
	require.NoError(t, err)
	s.Slots = claimed
	assert.Equal(t, 2, s.Filled())

	released, err := Release(s.Slots, "a", "memberN")
	require.NoError(t, err)
	s.Slots = released
	assert.Equal(t, 1, s.Filled())
	assert.Equal(t, "memberM", *s.Slots[2].AssignedTo)
}

func TestNormalizeSlots(t *testing.T) {
	t.Run("assigns missing ids", func(t *testing.T) {
		slots := []Slot{{}, {}, {ID: "keep"}}
		require.NoError(t, normalizeSlots(slots))
		assert.NotEmpty(t, slots[0].ID)
		assert.NotEmpty(t, slots[1].ID)
		assert.NotEqual(t, slots[0].ID, slots[1].ID)
		assert.Equal(t, "keep", slots[2].ID)
	})
	t.Run("rejects duplicates", func(t *testing.T) {
		slots := []Slot{{ID: "dup"}, {ID: "dup"}}
		assert.Error(t, normalizeSlots(slots))
	})
}
