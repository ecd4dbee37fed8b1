package services

import (
	"sync"

	"go.uber.org/zap"

	"messhall/pkg/utils"
)

// MealLockGate holds the process-wide "meals locked" switch. While locked no
// subscription flag may change; redemption is unaffected.
type MealLockGate struct {
	mu     sync.RWMutex
	locked bool
	logger *zap.Logger
}

func NewMealLockGate(locked bool, logger *zap.Logger) *MealLockGate {
	return &MealLockGate{locked: locked, logger: logger}
}

func (g *MealLockGate) Locked() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.locked
}

// Toggle flips the switch and returns the new state.
func (g *MealLockGate) Toggle() bool {
	g.mu.Lock()
	g.locked = !g.locked
	locked := g.locked
	g.mu.Unlock()

	g.logger.Info("meal lock toggled", zap.Bool("locked", locked))
	return locked
}

// WhileUnlocked runs fn with the switch pinned open. It returns
// utils.ErrMealsLocked without calling fn when the gate is locked, and a
// Toggle issued meanwhile waits until fn returns.
func (g *MealLockGate) WhileUnlocked(fn func() error) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.locked {
		return utils.ErrMealsLocked
	}
	return fn()
}
