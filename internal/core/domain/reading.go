package domain

// MoneyReading is an amount together with its digit and word renderings.
type MoneyReading struct {
	Amount Money
	Text   string // "2 рубля 22 копейки"
	Words  string // "два рубля двадцать две копейки"
}

// ReadMoney renders m both ways.
func ReadMoney(m Money) (MoneyReading, error) {
	words, err := m.Spell()
	if err != nil {
		return MoneyReading{}, err
	}
	return MoneyReading{Amount: m, Text: m.String(), Words: words}, nil
}

// CountReading is a count together with its digit and word renderings.
type CountReading struct {
	Count Count
	Text  string
	Words string
}

// ReadCount renders c both ways.
func ReadCount(c Count) (CountReading, error) {
	words, err := c.Spell()
	if err != nil {
		return CountReading{}, err
	}
	return CountReading{Count: c, Text: c.String(), Words: words}, nil
}
