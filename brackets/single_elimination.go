package brackets

import (
	"fmt"

	"github.com/padeltour/tournament-server/models"
)

// The bracket shape is fixed: 4 quarterfinals, 2 semifinals, 1 final.
const (
	QuarterCount = 4
	SemiCount    = 2
	SlotCount    = QuarterCount + SemiCount + 1
)

// SlotState describes how far a single bracket slot has progressed.
type SlotState string

const (
	SlotEmpty   SlotState = "empty"   // no teams assigned
	SlotPartial SlotState = "partial" // one team assigned
	SlotReady   SlotState = "ready"   // both teams assigned, no winner
	SlotDecided SlotState = "decided" // winner set; still overwritable
)

// SlotUID derives the stable identifier of a slot, e.g. "semi-1".
func SlotUID(round models.BracketRound, position int) string {
	return fmt.Sprintf("%s-%d", round, position)
}

// NewBracket returns the 7 slots of an empty bracket in display order:
// quarters 0-3, semis 0-1, final.
func NewBracket() []*models.BracketSlot {
	slots := make([]*models.BracketSlot, 0, SlotCount)
	for i := 0; i < QuarterCount; i++ {
		slots = append(slots, emptySlot(models.BracketRoundQuarter, i))
	}
	for i := 0; i < SemiCount; i++ {
		slots = append(slots, emptySlot(models.BracketRoundSemi, i))
	}
	slots = append(slots, emptySlot(models.BracketRoundFinal, 0))
	return slots
}

func emptySlot(round models.BracketRound, position int) *models.BracketSlot {
	return &models.BracketSlot{
		UID:      SlotUID(round, position),
		Round:    round,
		Position: position,
	}
}

// FindSlot returns the slot with the given UID, or nil.
func FindSlot(slots []*models.BracketSlot, uid string) *models.BracketSlot {
	for _, slot := range slots {
		if slot.UID == uid {
			return slot
		}
	}
	return nil
}

func findByRoundPosition(slots []*models.BracketSlot, round models.BracketRound, position int) *models.BracketSlot {
	for _, slot := range slots {
		if slot.Round == round && slot.Position == position {
			return slot
		}
	}
	return nil
}

// StateOf classifies a slot. A decided slot stays editable: overwriting the
// winner re-triggers propagation with the new value.
func StateOf(slot *models.BracketSlot) SlotState {
	switch {
	case slot.WinnerID != nil:
		return SlotDecided
	case slot.Team1ID != nil && slot.Team2ID != nil:
		return SlotReady
	case slot.Team1ID != nil || slot.Team2ID != nil:
		return SlotPartial
	default:
		return SlotEmpty
	}
}

// Propagate copies the winner of slot into the team slot it feeds in the
// next round and returns the modified downstream slot, or nil when there is
// nothing to do (no winner yet, or the slot is the final).
//
// Quarter winners feed semi[position/2]: an even position lands in the
// semifinal's team1 slot, an odd one in team2. Semi winners feed the final
// the same way. Propagation is one-shot and forward-only: changing a winner
// after deeper rounds have progressed does not clear their state, that
// cleanup is a manual admin action.
func Propagate(slots []*models.BracketSlot, slot *models.BracketSlot) *models.BracketSlot {
	if slot.WinnerID == nil {
		return nil
	}

	var next *models.BracketSlot
	switch slot.Round {
	case models.BracketRoundQuarter:
		next = findByRoundPosition(slots, models.BracketRoundSemi, slot.Position/2)
	case models.BracketRoundSemi:
		next = findByRoundPosition(slots, models.BracketRoundFinal, 0)
	default:
		return nil // the final is terminal
	}
	if next == nil {
		return nil
	}

	winnerID := *slot.WinnerID
	if slot.Position%2 == 0 {
		next.Team1ID = &winnerID
	} else {
		next.Team2ID = &winnerID
	}
	return next
}
