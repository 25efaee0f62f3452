package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/money_counter/internal/core/domain"
)

func press(t *testing.T, m model, msgs ...tea.KeyMsg) model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(model)
		require.True(t, ok)
	}
	return m
}

func typeText(s string) []tea.KeyMsg {
	var msgs []tea.KeyMsg
	for _, r := range s {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

func TestModel_TypingReplacesLeadingZero(t *testing.T) {
	m := newModel(Deps{})

	m = press(t, m, typeText("12")...)

	assert.Equal(t, "12", m.budget.Text())
	assert.Equal(t, 2, m.fields[0].cursor)
}

func TestModel_DecimalPointGetsPlaceholder(t *testing.T) {
	m := newModel(Deps{})

	m = press(t, m, typeText("12.")...)
	assert.Equal(t, "12.0", m.budget.Text())
	assert.Equal(t, 4, m.fields[0].cursor)

	m = press(t, m, typeText("5")...)
	assert.Equal(t, "12.5", m.budget.Text())
}

func TestModel_RejectedInputKeepsValue(t *testing.T) {
	m := newModel(Deps{})

	m = press(t, m, typeText("7x")...)

	assert.Equal(t, "7", m.budget.Text())
	assert.Equal(t, 1, m.fields[0].cursor)
}

func TestModel_FocusCycles(t *testing.T) {
	m := newModel(Deps{})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.focus)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.focus, "tab wraps around")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 2, m.focus)

	m = press(t, m, typeText("3")...)
	assert.Equal(t, "3", m.count.Text())
	assert.Equal(t, "0", m.budget.Text())
}

func TestModel_BackspaceAndDelete(t *testing.T) {
	m := newModel(Deps{Budget: domain.MustNewMoney(decimal.NewFromInt(123))})
	require.Equal(t, 3, m.fields[0].cursor)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "12", m.budget.Text())
	assert.Equal(t, 2, m.fields[0].cursor)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyHome}, tea.KeyMsg{Type: tea.KeyDelete})
	assert.Equal(t, "2", m.budget.Text())
	assert.Equal(t, 0, m.fields[0].cursor)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDelete})
	assert.Equal(t, "0", m.budget.Text(), "an emptied field resets to zero")
}

func TestModel_CursorMovementIsClamped(t *testing.T) {
	m := newModel(Deps{Budget: domain.MustNewMoney(decimal.NewFromInt(5))})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.fields[0].cursor)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, m.fields[0].cursor)
}

func TestModel_ViewShowsSummary(t *testing.T) {
	m := newModel(Deps{
		Budget: domain.MustNewMoney(decimal.NewFromInt(100)),
		Price:  domain.MustNewMoney(decimal.NewFromInt(30)),
		Count:  domain.CountFromUint64(2),
	})

	view := m.View()

	assert.Contains(t, view, "Итоговая сумма: 60 рублей за 2 единицы.")
	assert.Contains(t, view, "В остатке: 40 рублей")
	assert.Contains(t, view, "Бюджета хватит на: 3 единицы")
}

func TestModel_Quit(t *testing.T) {
	m := newModel(Deps{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
