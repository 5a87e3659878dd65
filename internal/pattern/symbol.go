package pattern

// Symbol is the content of a single grid cell.
type Symbol uint8

const (
	Empty Symbol = iota
	Horizontal
	Vertical
)

// Alphabet maps each symbol code to its display character.
var Alphabet = [...]rune{
	Empty:      ' ',
	Horizontal: '-',
	Vertical:   '|',
}

// Symbols lists every symbol in code order.
var Symbols = []Symbol{Empty, Horizontal, Vertical}

// Valid reports whether s is one of the three known symbols.
func (s Symbol) Valid() bool {
	return int(s) < len(Alphabet)
}

// Rune returns the display character. Unknown codes render as blanks.
func (s Symbol) Rune() rune {
	if !s.Valid() {
		return Alphabet[Empty]
	}
	return Alphabet[s]
}

func (s Symbol) String() string {
	switch s {
	case Empty:
		return "empty"
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return "unknown"
}

// SymbolFromRune is the inverse of [Symbol.Rune].
func SymbolFromRune(r rune) (Symbol, bool) {
	for _, s := range Symbols {
		if Alphabet[s] == r {
			return s, true
		}
	}
	return Empty, false
}
