// Package tui is the interactive what-if explorer: it shows a household's
// benefits and re-simulates as life events are toggled.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lifebridge/lifebridge/internal/calculation"
	"github.com/lifebridge/lifebridge/internal/domain"
	"github.com/shopspring/decimal"
)

// IncomeStep is how much one income adjustment changes annual income
var IncomeStep = decimal.NewFromInt(500000)

// Model is the explorer state
type Model struct {
	engine *calculation.CalculationEngine
	name   string

	// base is the profile as loaded; profile is the edited copy
	base    domain.UserProfile
	profile domain.UserProfile

	baseline *domain.SimulationResult
	result   *domain.SimulationResult

	keys        keyMap
	help        help.Model
	showReasons bool

	width  int
	height int

	status string
	err    error
}

// NewModel creates an explorer for profile
func NewModel(engine *calculation.CalculationEngine, name string, profile domain.UserProfile) Model {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	return Model{
		engine:   engine,
		name:     name,
		base:     profile.Clone(),
		profile:  profile.Clone(),
		baseline: engine.Simulate(profile),
		keys:     defaultKeyMap(),
		help:     help.New(),
		width:    80,
		height:   24,
	}
}

// Init runs the first simulation
func (m Model) Init() tea.Cmd {
	return simulateCmd(m.engine, m.profile)
}

// Profile returns the edited profile
func (m Model) Profile() domain.UserProfile { return m.profile.Clone() }

// Result returns the latest simulation, nil before the first one completes
func (m Model) Result() *domain.SimulationResult { return m.result }

func simulateCmd(engine *calculation.CalculationEngine, profile domain.UserProfile) tea.Cmd {
	p := profile.Clone()
	return func() tea.Msg {
		result, err := engine.SimulateChecked(p)
		return SimulatedMsg{Result: result, Err: err}
	}
}

// Run starts the explorer full screen and blocks until the user quits
func Run(engine *calculation.CalculationEngine, name string, profile domain.UserProfile) error {
	_, err := tea.NewProgram(NewModel(engine, name, profile), tea.WithAltScreen()).Run()
	return err
}
