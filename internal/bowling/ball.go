package bowling

import "fmt"

// BallValue translates one ball symbol into the number of pins knocked
// down: '-' is a miss (0), '1'..'9' are their digit value, and 'X' is a
// strike (10).
//
// A '/' has no standalone pin value; the pins it represents depend on the
// ball before it, so callers must resolve spares contextually before
// decoding. '/' and every other character fail with ErrInvalidSymbol.
func BallValue(c byte) (int, error) {
	switch {
	case c == SymbolMiss:
		return 0, nil
	case c == SymbolStrike:
		return 10, nil
	case c >= '1' && c <= '9':
		return int(c - '0'), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, c)
}
