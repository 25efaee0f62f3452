package pronounce

// Forms holds the three declension forms of a noun, in the order
// nominative singular ("1"), genitive singular ("2-4"), genitive plural ("5-20").
type Forms [3]string

// MaxPosition is the highest scale position with a scale noun.
const MaxPosition = 12

// MaxDigits is the longest digit string Group accepts.
const MaxDigits = 3 * (MaxPosition + 1)

var hundreds = [10]string{
	"", "сто", "двести", "триста", "четыреста",
	"пятьсот", "шестьсот", "семьсот", "восемьсот", "девятьсот",
}

var teens = [10]string{
	"десять", "одиннадцать", "двенадцать", "тринадцать", "четырнадцать",
	"пятнадцать", "шестнадцать", "семнадцать", "восемнадцать", "девятнадцать",
}

var decades = [10]string{
	"", "", "двадцать", "тридцать", "сорок",
	"пятьдесят", "шестьдесят", "семьдесят", "восемьдесят", "девяносто",
}

var unitsMasculine = [10]string{
	"", "один", "два", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять",
}

var unitsFeminine = [10]string{
	"", "одна", "две", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять",
}

// scaleNouns is indexed by scale position; position 0 belongs to the caller's noun.
var scaleNouns = [MaxPosition + 1]Forms{
	{},
	{"тысяча", "тысячи", "тысяч"},
	{"миллион", "миллиона", "миллионов"},
	{"миллиард", "миллиарда", "миллиардов"},
	{"триллион", "триллиона", "триллионов"},
	{"квадриллион", "квадриллиона", "квадриллионов"},
	{"квинтиллион", "квинтиллиона", "квинтиллионов"},
	{"секстиллион", "секстиллиона", "секстиллионов"},
	{"септиллион", "септиллиона", "септиллионов"},
	{"октиллион", "октиллиона", "октиллионов"},
	{"нониллион", "нониллиона", "нониллионов"},
	{"дециллион", "дециллиона", "дециллионов"},
	{"ундециллион", "ундециллиона", "ундециллионов"},
}

// ScaleNoun returns the declension forms of the scale word at position.
// Position 0 and positions past MaxPosition have no scale word.
func ScaleNoun(position int) (Forms, bool) {
	if position <= 0 || position > MaxPosition {
		return Forms{}, false
	}
	return scaleNouns[position], true
}
