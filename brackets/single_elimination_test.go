package brackets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padeltour/tournament-server/models"
)

func intPtr(v int) *int { return &v }

func TestNewBracket(t *testing.T) {
	slots := NewBracket()
	require.Len(t, slots, SlotCount)

	wantUIDs := []string{
		"quarter-0", "quarter-1", "quarter-2", "quarter-3",
		"semi-0", "semi-1",
		"final-0",
	}
	for i, slot := range slots {
		assert.Equal(t, wantUIDs[i], slot.UID)
		assert.Nil(t, slot.Team1ID)
		assert.Nil(t, slot.Team2ID)
		assert.Nil(t, slot.WinnerID)
		assert.Equal(t, SlotEmpty, StateOf(slot))
	}
}

func TestFindSlot(t *testing.T) {
	slots := NewBracket()
	slot := FindSlot(slots, "semi-1")
	require.NotNil(t, slot)
	assert.Equal(t, models.BracketRoundSemi, slot.Round)
	assert.Equal(t, 1, slot.Position)

	assert.Nil(t, FindSlot(slots, "quarter-9"))
	assert.Nil(t, FindSlot(slots, ""))
}

func TestStateOf(t *testing.T) {
	slot := &models.BracketSlot{UID: "quarter-0", Round: models.BracketRoundQuarter}
	assert.Equal(t, SlotEmpty, StateOf(slot))

	slot.Team1ID = intPtr(1)
	assert.Equal(t, SlotPartial, StateOf(slot))

	slot.Team2ID = intPtr(2)
	assert.Equal(t, SlotReady, StateOf(slot))

	slot.WinnerID = intPtr(2)
	assert.Equal(t, SlotDecided, StateOf(slot))
}

func TestPropagate_QuarterToSemi(t *testing.T) {
	tests := []struct {
		quarterUID string
		wantSemi   string
		wantSide   int // 1 or 2
	}{
		{"quarter-0", "semi-0", 1},
		{"quarter-1", "semi-0", 2},
		{"quarter-2", "semi-1", 1},
		{"quarter-3", "semi-1", 2},
	}

	for _, tt := range tests {
		t.Run(tt.quarterUID, func(t *testing.T) {
			slots := NewBracket()
			slot := FindSlot(slots, tt.quarterUID)
			slot.Team1ID = intPtr(11)
			slot.Team2ID = intPtr(22)
			slot.WinnerID = intPtr(22)

			next := Propagate(slots, slot)
			require.NotNil(t, next)
			assert.Equal(t, tt.wantSemi, next.UID)
			if tt.wantSide == 1 {
				require.NotNil(t, next.Team1ID)
				assert.Equal(t, 22, *next.Team1ID)
				assert.Nil(t, next.Team2ID)
			} else {
				require.NotNil(t, next.Team2ID)
				assert.Equal(t, 22, *next.Team2ID)
				assert.Nil(t, next.Team1ID)
			}
		})
	}
}

func TestPropagate_SemiToFinal(t *testing.T) {
	slots := NewBracket()

	semi0 := FindSlot(slots, "semi-0")
	semi0.Team1ID = intPtr(1)
	semi0.Team2ID = intPtr(2)
	semi0.WinnerID = intPtr(1)
	next := Propagate(slots, semi0)
	require.NotNil(t, next)
	assert.Equal(t, "final-0", next.UID)
	require.NotNil(t, next.Team1ID)
	assert.Equal(t, 1, *next.Team1ID)

	semi1 := FindSlot(slots, "semi-1")
	semi1.Team1ID = intPtr(3)
	semi1.Team2ID = intPtr(4)
	semi1.WinnerID = intPtr(4)
	next = Propagate(slots, semi1)
	require.NotNil(t, next)
	assert.Equal(t, "final-0", next.UID)
	require.NotNil(t, next.Team2ID)
	assert.Equal(t, 4, *next.Team2ID)
}

func TestPropagate_NoWinnerNoOp(t *testing.T) {
	slots := NewBracket()
	slot := FindSlot(slots, "quarter-0")
	slot.Team1ID = intPtr(1)
	slot.Team2ID = intPtr(2)

	assert.Nil(t, Propagate(slots, slot))
	semi := FindSlot(slots, "semi-0")
	assert.Nil(t, semi.Team1ID)
}

func TestPropagate_FinalIsTerminal(t *testing.T) {
	slots := NewBracket()
	final := FindSlot(slots, "final-0")
	final.Team1ID = intPtr(1)
	final.Team2ID = intPtr(2)
	final.WinnerID = intPtr(2)

	assert.Nil(t, Propagate(slots, final))
}

func TestPropagate_OverwriteReplacesDownstreamTeam(t *testing.T) {
	slots := NewBracket()
	slot := FindSlot(slots, "quarter-0")
	slot.Team1ID = intPtr(1)
	slot.Team2ID = intPtr(2)
	slot.WinnerID = intPtr(1)
	Propagate(slots, slot)

	// Correcting the winner overwrites the semifinal seat it feeds.
	slot.WinnerID = intPtr(2)
	next := Propagate(slots, slot)
	require.NotNil(t, next)
	require.NotNil(t, next.Team1ID)
	assert.Equal(t, 2, *next.Team1ID)
}

func TestPropagate_DoesNotClearDeeperRounds(t *testing.T) {
	slots := NewBracket()

	quarter := FindSlot(slots, "quarter-0")
	quarter.Team1ID = intPtr(1)
	quarter.Team2ID = intPtr(2)
	quarter.WinnerID = intPtr(1)
	Propagate(slots, quarter)

	semi := FindSlot(slots, "semi-0")
	semi.Team2ID = intPtr(3)
	semi.WinnerID = intPtr(1)
	Propagate(slots, semi)

	// Changing the quarterfinal winner updates the semi seat but leaves
	// the semi's own result and the final untouched.
	quarter.WinnerID = intPtr(2)
	Propagate(slots, quarter)

	require.NotNil(t, semi.Team1ID)
	assert.Equal(t, 2, *semi.Team1ID)
	require.NotNil(t, semi.WinnerID)
	assert.Equal(t, 1, *semi.WinnerID)

	final := FindSlot(slots, "final-0")
	require.NotNil(t, final.Team1ID)
	assert.Equal(t, 1, *final.Team1ID)
}

func TestSlotUID(t *testing.T) {
	assert.Equal(t, "quarter-3", SlotUID(models.BracketRoundQuarter, 3))
	assert.Equal(t, "final-0", SlotUID(models.BracketRoundFinal, 0))
}
