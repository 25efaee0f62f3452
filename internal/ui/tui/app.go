// Package tui is the interactive budget window: three editable fields and a
// live summary of what the purchase costs.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SscSPs/money_counter/internal/core/domain"
	"github.com/SscSPs/money_counter/internal/core/editing"
)

// Deps holds the values the window opens with.
type Deps struct {
	Budget domain.Money
	Price  domain.Money
	Count  domain.Count
}

// editor is what editing.MoneyField and editing.CountField have in common.
type editor interface {
	Text() string
	Insert(text string, cursor int) int
	Delete(from, to int)
}

type field struct {
	label   string
	edit    editor
	cursor  int
	reading func() string
}

type model struct {
	theme Theme
	keys  keyMap
	help  help.Model

	budget *editing.MoneyField
	price  *editing.MoneyField
	count  *editing.CountField

	fields []*field
	focus  int
}

func Run(deps Deps) error {
	p := tea.NewProgram(newModel(deps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	budget := editing.NewMoneyField(deps.Budget)
	price := editing.NewMoneyField(deps.Price)
	count := editing.NewCountField(deps.Count)

	fields := []*field{
		{label: "Бюджет", edit: budget, reading: func() string { return budget.Value().String() }},
		{label: "Цена", edit: price, reading: func() string { return price.Value().String() }},
		{label: "Количество", edit: count, reading: func() string { return count.Value().String() }},
	}
	for _, f := range fields {
		f.cursor = runeLen(f.edit.Text())
	}

	return model{
		theme:  DefaultTheme(),
		keys:   defaultKeyMap(),
		help:   help.New(),
		budget: budget,
		price:  price,
		count:  count,
		fields: fields,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		f := m.fields[m.focus]
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.focus = (m.focus + 1) % len(m.fields)
		case key.Matches(msg, m.keys.Prev):
			m.focus = (m.focus + len(m.fields) - 1) % len(m.fields)
		case key.Matches(msg, m.keys.Left):
			f.cursor = max(f.cursor-1, 0)
		case key.Matches(msg, m.keys.Right):
			f.cursor = min(f.cursor+1, runeLen(f.edit.Text()))
		case key.Matches(msg, m.keys.Home):
			f.cursor = 0
		case key.Matches(msg, m.keys.End):
			f.cursor = runeLen(f.edit.Text())
		case key.Matches(msg, m.keys.Backspace):
			if f.cursor > 0 {
				before := runeLen(f.edit.Text())
				f.edit.Delete(f.cursor-1, f.cursor)
				if after := runeLen(f.edit.Text()); after != before {
					f.cursor = clamp(f.cursor-(before-after), 0, after)
				}
			}
		case key.Matches(msg, m.keys.Delete):
			f.edit.Delete(f.cursor, f.cursor+1)
			f.cursor = min(f.cursor, runeLen(f.edit.Text()))
		case msg.Type == tea.KeyRunes:
			f.cursor += f.edit.Insert(string(msg.Runes), f.cursor)
			f.cursor = min(f.cursor, runeLen(f.edit.Text()))
		}
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Сколько денег") + "\n"

	var form strings.Builder
	for i, f := range m.fields {
		label := m.theme.Label
		text := f.edit.Text()
		if i == m.focus {
			label = m.theme.Focused
			text = withCursor(text, f.cursor)
		}
		fmt.Fprintf(&form, "%s %s\n%s %s\n",
			label.Render(f.label), text,
			m.theme.Label.Render(""), m.theme.Reading.Render(f.reading()))
	}

	return wrap.Render(header + "\n" +
		m.theme.Card.Render(strings.TrimRight(form.String(), "\n")) + "\n" +
		m.theme.Card.Render(m.summary()) + "\n" +
		m.help.View(m.keys))
}

// summary describes the purchase for the current field values.
func (m model) summary() string {
	calc, err := domain.NewCalculation(m.budget.Value(), m.price.Value(), m.count.Value())
	if err != nil {
		return m.theme.Shortage.Render(err.Error())
	}

	lines := []string{calc.Summary()}
	if calc.Shortfall() {
		lines[0] = m.theme.Shortage.Render(lines[0])
	}
	if spelled, err := calc.SpelledSummary(); err == nil {
		lines = append(lines, "", m.theme.Reading.Render(spelled))
	}
	if affordable, err := calc.Affordable(); err == nil {
		lines = append(lines, "", fmt.Sprintf("Бюджета хватит на: %s", affordable))
	}
	return strings.Join(lines, "\n")
}

func withCursor(text string, cursor int) string {
	runes := []rune(text)
	cursorStyle := lipgloss.NewStyle().Reverse(true)
	if cursor >= len(runes) {
		return text + cursorStyle.Render(" ")
	}
	return string(runes[:cursor]) + cursorStyle.Render(string(runes[cursor])) + string(runes[cursor+1:])
}

func runeLen(s string) int { return len([]rune(s)) }

func clamp(v, lo, hi int) int { return max(lo, min(v, hi)) }
