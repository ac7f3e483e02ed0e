package testutils

import (
	"fmt"
	"sync"
)

// FixedRoller implements dice.Roller with predetermined results so tests can
// pin down generated stats and resource rolls.
type FixedRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

// NewFixedRoller creates a roller that returns the given results in order.
func NewFixedRoller(rolls ...int) *FixedRoller {
	return &FixedRoller{rolls: rolls}
}

// SetRolls replaces the queued results and resets the index.
func (f *FixedRoller) SetRolls(rolls []int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rolls = rolls
	f.rollIndex = 0
}

// Roll returns the next predetermined result, ignoring the die size.
func (f *FixedRoller) Roll(_ int) (int, error) {
	return f.next()
}

// RollN returns the next count predetermined results.
func (f *FixedRoller) RollN(count, _ int) ([]int, error) {
	results := make([]int, 0, count)
	for i := 0; i < count; i++ {
		roll, err := f.next()
		if err != nil {
			return nil, err
		}
		results = append(results, roll)
	}
	return results, nil
}

func (f *FixedRoller) next() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.rollIndex >= len(f.rolls) {
		return 0, fmt.Errorf("no more predetermined rolls available (used %d of %d)", f.rollIndex, len(f.rolls))
	}

	roll := f.rolls[f.rollIndex]
	f.rollIndex++
	return roll, nil
}
