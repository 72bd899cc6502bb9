package tui

import "github.com/lifebridge/lifebridge/internal/domain"

// SimulatedMsg carries the result of re-simulating the edited profile
type SimulatedMsg struct {
	Result *domain.SimulationResult
	Err    error
}
