// Package editing holds text fields that only ever contain a valid amount or
// count. An edit that would leave the text unparsable is rejected and the
// field keeps its last valid value. Fields are not safe for concurrent use.
package editing

import (
	"strings"

	"github.com/SscSPs/money_counter/internal/core/domain"
)

// placeholder is the fractional zero appended after a typed decimal point.
const placeholder = ".0"

// MoneyField edits a domain.Money.
type MoneyField struct {
	value domain.Money
}

// NewMoneyField starts the field at m.
func NewMoneyField(m domain.Money) *MoneyField {
	return &MoneyField{value: m}
}

func (f *MoneyField) Value() domain.Money { return f.value }
func (f *MoneyField) Text() string        { return f.value.Text() }

// Insert puts text at the rune offset cursor and returns how far the cursor
// moves. Typing at the end of "12.0" replaces the placeholder zero, and a "."
// typed at the end gains one ("12" becomes "12.0").
func (f *MoneyField) Insert(text string, cursor int) int {
	current := []rune(f.Text())
	if cursor < 0 || cursor > len(current) {
		return 0
	}

	var edited string
	atEnd := cursor == len(current)
	if atEnd && strings.HasSuffix(string(current), placeholder) {
		edited = string(current[:len(current)-len(placeholder)]) + "." + text
	} else {
		edited = splice(current, cursor, text)
	}
	if atEnd && text == "." {
		edited += "0"
	}

	parsed, err := domain.ParseMoney(edited)
	if err != nil {
		return 0
	}
	f.value = parsed
	return advance(len(current), f.Text())
}

// Delete removes the runes in [from, to). An empty result resets the field to
// zero.
func (f *MoneyField) Delete(from, to int) {
	edited, ok := cut([]rune(f.Text()), from, to)
	if !ok {
		return
	}
	if edited == "" {
		f.value = domain.Money{}
		return
	}
	if parsed, err := domain.ParseMoney(edited); err == nil {
		f.value = parsed
	}
}

// CountField edits a domain.Count.
type CountField struct {
	value domain.Count
}

// NewCountField starts the field at c.
func NewCountField(c domain.Count) *CountField {
	return &CountField{value: c}
}

func (f *CountField) Value() domain.Count { return f.value }

func (f *CountField) Text() string {
	text, _ := f.value.MarshalText()
	return string(text)
}

// Insert puts text at the rune offset cursor and returns how far the cursor
// moves.
func (f *CountField) Insert(text string, cursor int) int {
	current := []rune(f.Text())
	if cursor < 0 || cursor > len(current) {
		return 0
	}
	parsed, err := domain.ParseCount(splice(current, cursor, text))
	if err != nil {
		return 0
	}
	f.value = parsed
	return advance(len(current), f.Text())
}

// Delete removes the runes in [from, to). An empty result resets the field to
// zero.
func (f *CountField) Delete(from, to int) {
	edited, ok := cut([]rune(f.Text()), from, to)
	if !ok {
		return
	}
	if edited == "" {
		f.value = domain.Count{}
		return
	}
	if parsed, err := domain.ParseCount(edited); err == nil {
		f.value = parsed
	}
}

func splice(runes []rune, at int, text string) string {
	return string(runes[:at]) + text + string(runes[at:])
}

// cut clamps the range to the text; ok is false when nothing would be removed.
func cut(runes []rune, from, to int) (string, bool) {
	from = max(from, 0)
	to = min(to, len(runes))
	if from >= to {
		return "", false
	}
	return string(runes[:from]) + string(runes[to:]), true
}

// advance is the growth of the canonical text, never negative.
func advance(before int, after string) int {
	return max(len([]rune(after))-before, 0)
}
