package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lifebridge/lifebridge/internal/domain"
	"github.com/lifebridge/lifebridge/internal/transform"
	"github.com/shopspring/decimal"
)

// Update handles key presses and simulation results
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case SimulatedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.result = msg.Result
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.profile

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Reasons):
		m.showReasons = !m.showReasons
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.profile = m.base.Clone()
		m.status = "Reset to the loaded profile"
		m.err = nil
		return m, simulateCmd(m.engine, m.profile)

	case key.Matches(msg, m.keys.Pregnancy):
		return m.apply(&transform.SetPregnant{Pregnant: !p.IsPregnant})

	case key.Matches(msg, m.keys.Birth):
		return m.apply(&transform.GiveBirth{})

	case key.Matches(msg, m.keys.Maternity):
		if p.IsTakingMaternityLeave {
			return m.edit("End maternity leave", func(p *domain.UserProfile) { p.IsTakingMaternityLeave = false })
		}
		return m.apply(&transform.StartLeave{Kind: transform.LeaveMaternity})

	case key.Matches(msg, m.keys.Paternity):
		if p.IsTakingPaternityLeave {
			return m.edit("End paternity leave", func(p *domain.UserProfile) { p.IsTakingPaternityLeave = false })
		}
		return m.apply(&transform.StartLeave{Kind: transform.LeavePaternity})

	case key.Matches(msg, m.keys.Unemployment):
		if p.HasStatus(domain.EmploymentUnemployed) {
			return m.apply(&transform.StartJob{Status: domain.EmploymentEmployed})
		}
		return m.apply(&transform.LoseJob{})

	case key.Matches(msg, m.keys.AddChild):
		return m.apply(&transform.AddChild{Age: 0})

	case key.Matches(msg, m.keys.RemoveChild):
		return m.apply(&transform.RemoveYoungestChild{})

	case key.Matches(msg, m.keys.IncomeUp):
		return m.apply(&transform.SetIncome{Amount: p.AnnualIncome.Add(IncomeStep)})

	case key.Matches(msg, m.keys.IncomeDown):
		return m.apply(&transform.SetIncome{Amount: decimal.Max(decimal.Zero, p.AnnualIncome.Sub(IncomeStep))})
	}
	return m, nil
}

// apply runs t against the edited profile and re-simulates on success
func (m Model) apply(t transform.ProfileTransform) (tea.Model, tea.Cmd) {
	next, err := transform.ApplyTransforms(m.profile, []transform.ProfileTransform{t})
	if err != nil {
		m.err = err
		return m, nil
	}
	m.profile = next
	m.status = t.Description()
	m.err = nil
	return m, simulateCmd(m.engine, m.profile)
}

// edit applies a direct change for toggles that have no transform
func (m Model) edit(status string, change func(p *domain.UserProfile)) (tea.Model, tea.Cmd) {
	next := m.profile.Clone()
	change(&next)
	m.profile = next
	m.status = status
	m.err = nil
	return m, simulateCmd(m.engine, m.profile)
}
