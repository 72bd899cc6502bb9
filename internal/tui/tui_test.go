package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lifebridge/lifebridge/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleEmployed() domain.UserProfile {
	return domain.UserProfile{
		AnnualIncome:     decimal.NewFromInt(3600000),
		EmploymentStatus: []domain.EmploymentStatus{domain.EmploymentEmployed},
		ChildrenAges:     []int{},
	}
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// run feeds msg to m and then the message produced by any returned command
func run(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	if cmd != nil {
		next, _ = m.Update(cmd())
		m = next.(Model)
	}
	return m
}

func started(t *testing.T, p domain.UserProfile) Model {
	t.Helper()
	m := NewModel(nil, "test household", p)
	cmd := m.Init()
	require.NotNil(t, cmd)
	next, _ := m.Update(cmd())
	return next.(Model)
}

func TestModel_InitialSimulation(t *testing.T) {
	m := started(t, singleEmployed())

	require.NotNil(t, m.Result())
	assert.True(t, m.Result().TotalBenefits.IsZero())
	assert.Contains(t, m.View(), "test household")
	assert.Contains(t, m.View(), "0 of 5 benefits eligible")
}

func TestModel_TogglesResimulate(t *testing.T) {
	m := started(t, singleEmployed())

	m = run(t, m, keyMsg("p"))
	assert.True(t, m.Profile().IsPregnant)
	assert.Equal(t, "500000", m.Result().TotalBenefits.String())

	m = run(t, m, keyMsg("u"))
	assert.True(t, m.Profile().HasStatus(domain.EmploymentUnemployed))
	// birth 500000 + unemployment 180000 * 12
	assert.Equal(t, "2660000", m.Result().TotalBenefits.String())

	m = run(t, m, keyMsg("u"))
	assert.Equal(t, []domain.EmploymentStatus{domain.EmploymentEmployed}, m.Profile().EmploymentStatus)

	m = run(t, m, keyMsg("m"))
	assert.True(t, m.Profile().IsTakingMaternityLeave)
	leave, ok := m.Result().Benefit(domain.BenefitParentalLeave)
	require.True(t, ok)
	assert.True(t, leave.Eligibility)

	m = run(t, m, keyMsg("m"))
	assert.False(t, m.Profile().IsTakingMaternityLeave)
	assert.Equal(t, "End maternity leave", m.status)

	m = run(t, m, keyMsg("f"))
	assert.True(t, m.Profile().IsTakingPaternityLeave)
	m = run(t, m, keyMsg("f"))
	assert.False(t, m.Profile().IsTakingPaternityLeave)
}

func TestModel_Children(t *testing.T) {
	m := started(t, singleEmployed())

	m = run(t, m, keyMsg("a"))
	assert.Equal(t, []int{0}, m.Profile().ChildrenAges)
	assert.Equal(t, 1, m.Profile().NumberOfChildren)
	// birth 500000 + 15000 * 12 + medical 30000
	assert.Equal(t, "710000", m.Result().TotalBenefits.String())

	m = run(t, m, keyMsg("x"))
	assert.Empty(t, m.Profile().ChildrenAges)

	m = run(t, m, keyMsg("x"))
	require.Error(t, m.err, "Removing from an empty household should report an error")
	assert.Contains(t, m.View(), "Error:")

	m = run(t, m, keyMsg("p"))
	m = run(t, m, keyMsg("b"))
	assert.False(t, m.Profile().IsPregnant)
	assert.Equal(t, []int{0}, m.Profile().ChildrenAges)
	assert.NoError(t, m.err)
}

func TestModel_Income(t *testing.T) {
	p := singleEmployed()
	p.AnnualIncome = decimal.NewFromInt(400000)
	m := started(t, p)

	m = run(t, m, keyMsg("+"))
	assert.Equal(t, "900000", m.Profile().AnnualIncome.String())

	m = run(t, m, keyMsg("left"))
	m = run(t, m, keyMsg("-"))
	assert.True(t, m.Profile().AnnualIncome.IsZero(), "Income should not go below zero")

	m = run(t, m, keyMsg("r"))
	assert.Equal(t, "400000", m.Profile().AnnualIncome.String())
}

func TestModel_ViewToggles(t *testing.T) {
	m := started(t, singleEmployed())

	m = run(t, m, keyMsg("?"))
	assert.True(t, m.help.ShowAll)

	m = run(t, m, keyMsg("d"))
	assert.True(t, m.showReasons)
	assert.Contains(t, m.View(), m.Result().Benefits[0].Reason)

	m = run(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
}

func TestModel_Quit(t *testing.T) {
	m := started(t, singleEmployed())

	for _, k := range []string{"q", "ctrl+c"} {
		_, cmd := m.Update(keyMsg(k))
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok, "%s should quit", k)
	}
}

func TestModel_SimulationError(t *testing.T) {
	m := started(t, singleEmployed())
	before := m.Result()

	m = run(t, m, SimulatedMsg{Err: errors.New("boom")})
	assert.Same(t, before, m.Result(), "A failed simulation keeps the last result")
	assert.Contains(t, m.View(), "boom")
}
