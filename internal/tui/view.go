package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lifebridge/lifebridge/internal/domain"
	"github.com/lifebridge/lifebridge/internal/tui/components"
	"github.com/lifebridge/lifebridge/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
)

// View renders the explorer
func (m Model) View() string {
	sections := []string{m.renderTitleBar(), m.renderProfile()}

	if m.result == nil {
		sections = append(sections, tuistyles.SubtitleStyle.Render("Simulating..."))
	} else {
		sections = append(sections,
			tuistyles.BorderStyle.Render(components.NewBenefitTable(m.result.Benefits).WithReasons(m.showReasons).Render()),
			m.renderTotals(),
		)
	}

	sections = append(sections, m.renderStatus(), m.help.View(m.keys))
	return tuistyles.AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderTitleBar() string {
	title := tuistyles.TitleStyle.Render("LifeBridge - benefit explorer")
	if m.name == "" {
		return title
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", tuistyles.SubtitleStyle.Render(m.name))
}

func (m Model) renderProfile() string {
	p := m.profile

	statuses := make([]string, len(p.EmploymentStatus))
	for i, s := range p.EmploymentStatus {
		statuses[i] = string(s)
	}

	ages := make([]string, len(p.ChildrenAges))
	for i, a := range p.ChildrenAges {
		ages[i] = fmt.Sprint(a)
	}
	children := "none"
	if len(ages) > 0 {
		children = fmt.Sprintf("%d (ages %s)", p.NumberOfChildren, strings.Join(ages, ", "))
	}

	line1 := fmt.Sprintf("Income %s/year  Status %s  Children %s",
		tuistyles.FormatYen(p.AnnualIncome), strings.Join(statuses, "+"), children)
	line2 := strings.Join([]string{
		flag("pregnant", p.IsPregnant),
		flag("maternity leave", p.IsTakingMaternityLeave),
		flag("paternity leave", p.IsTakingPaternityLeave),
		flag("spouse", p.HasSpouse),
	}, "  ")
	return line1 + "\n" + line2
}

func flag(label string, on bool) string {
	if on {
		return tuistyles.FlagOnStyle.Render("● " + label)
	}
	return tuistyles.FlagOffStyle.Render("○ " + label)
}

func (m Model) renderTotals() string {
	r, b := m.result, m.baseline
	if b == nil {
		b = &domain.SimulationResult{}
	}
	cards := []*components.MetricCard{
		components.NewMetricCard("Total", r.TotalBenefits).WithDelta(r.TotalBenefits.Sub(b.TotalBenefits)).WithDescription("first year"),
		components.NewMetricCard("Monthly", r.MonthlyBenefits).WithDelta(r.MonthlyBenefits.Sub(b.MonthlyBenefits)),
		components.NewMetricCard("Yearly", r.YearlyBenefits).WithDelta(r.YearlyBenefits.Sub(b.YearlyBenefits)),
		components.NewMetricCard("One-time", r.OneTimeBenefits).WithDelta(r.OneTimeBenefits.Sub(b.OneTimeBenefits)),
	}

	columns := 4
	if m.width < 100 {
		columns = 2
	}
	return components.MetricGrid(cards, columns)
}

func (m Model) renderStatus() string {
	if m.err != nil {
		return tuistyles.ErrorStyle.Render("Error: " + m.err.Error())
	}
	if m.status != "" {
		return tuistyles.InfoStyle.Render(m.status)
	}
	summary := fmt.Sprintf("%d of %d benefits eligible", m.eligibleCount(), len(domain.Catalogue))
	if diff := m.difference(); !diff.IsZero() {
		summary += fmt.Sprintf(", %s against the loaded profile", tuistyles.FormatYen(diff))
	}
	return tuistyles.SubtitleStyle.Render(summary)
}

func (m Model) eligibleCount() int {
	if m.result == nil {
		return 0
	}
	return len(m.result.Eligible())
}

// difference is the change in total benefits since the profile was loaded
func (m Model) difference() decimal.Decimal {
	if m.result == nil || m.baseline == nil {
		return decimal.Zero
	}
	return m.result.TotalBenefits.Sub(m.baseline.TotalBenefits)
}
