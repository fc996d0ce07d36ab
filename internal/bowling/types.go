package bowling

import "errors"

// Ball symbols recognized in a score line.
const (
	SymbolMiss   = '-'
	SymbolSpare  = '/'
	SymbolStrike = 'X'
)

// gameFrames is the number of scored frames in a game. Symbols beyond the
// tenth frame are bonus balls and only feed strike/spare lookahead.
const gameFrames = 10

// ErrInvalidSymbol indicates a character that does not encode a ball value.
var ErrInvalidSymbol = errors.New("invalid ball symbol")

// ErrMalformedFrame indicates a frame encoding that violates the
// one-or-two-symbol frame grammar.
var ErrMalformedFrame = errors.New("malformed frame")

// ErrIncompleteGame indicates a score line with fewer than ten frames, or
// one missing the bonus balls owed after a tenth-frame strike or spare.
var ErrIncompleteGame = errors.New("incomplete game")

// Frame is the textual encoding of one frame: a single 'X' for a strike,
// or two symbols for a spare or an open frame.
type Frame string

// IsStrike reports whether the frame is a strike.
func (f Frame) IsStrike() bool {
	return f == "X"
}

// IsSpare reports whether the frame is a spare.
func (f Frame) IsSpare() bool {
	return len(f) == 2 && f[1] == SymbolSpare
}

// FrameScore is the scored value of one frame.
type FrameScore struct {
	Number int // 1-based frame number
	Frame  Frame
	Score  int
}

// GameScore is the result of scoring a full game frame by frame.
type GameScore struct {
	Frames []FrameScore
	Total  int
}

// BallScore is the weighted value of one ball processed by the streaming
// scorer.
type BallScore struct {
	Index   int  // 0-based position of the symbol in the input
	Frame   int  // frames completed before this ball
	Symbol  byte
	Score   int  // pin count times the bonus multiplier for this ball
	Running int  // total after this ball
}

// StreamScore is the result of scoring a full game as a symbol stream.
type StreamScore struct {
	Balls []BallScore
	Total int
}
