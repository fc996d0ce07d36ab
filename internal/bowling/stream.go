package bowling

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// StreamScorer scores a game one ball symbol at a time, without ever
// building a frame list.
//
// Instead of looking ahead for strike and spare bonuses, the scorer keeps
// running bonus multipliers: a strike credits an extra count of the next
// two balls, a spare an extra count of the next ball, and the credits
// shift down one slot per ball processed. Consecutive strikes stack, so a
// ball after two strikes counts three times. Once ten frames are complete
// the game leaves the base phase: bonus balls score at face value against
// the outstanding credits and accrue no credits of their own.
//
// The zero value is ready to score a new game.
type StreamScorer struct {
	lastBall     int  // pins from the previous ball, resolves a following '/'
	currentBonus int  // extra counts owed to the current ball
	nextBonus    int  // extra counts owed to the ball after it
	secondBall   bool // the next ordinary symbol is a frame's second ball
	frames       int  // frames completed
	balls        int  // symbols consumed
	total        int
}

// Frames returns the number of completed frames.
func (s *StreamScorer) Frames() int {
	return s.frames
}

// Total returns the score accumulated so far.
func (s *StreamScorer) Total() int {
	return s.total
}

// Done reports whether the game is fully scored: ten frames are complete
// and no bonus credits remain outstanding. Further input is irrelevant to
// the score.
func (s *StreamScorer) Done() bool {
	return s.frames >= gameFrames && s.currentBonus == 0 && s.nextBonus == 0
}

// Roll scores one ball symbol and returns its trace entry.
//
// A '/' is only legal directly after an ordinary ball in the same frame;
// at the start of the input, after an 'X', or after another '/' it fails
// with ErrMalformedFrame.
func (s *StreamScorer) Roll(c byte) (BallScore, error) {
	var base int
	if c == SymbolSpare {
		if !s.secondBall {
			return BallScore{}, fmt.Errorf("%w: spare marker with no ball to complete", ErrMalformedFrame)
		}
		base = 10 - s.lastBall
	} else {
		v, err := BallValue(c)
		if err != nil {
			return BallScore{}, err
		}
		base = v
	}

	inBase := 0
	if s.frames < gameFrames {
		inBase = 1
	}
	score := (inBase + s.currentBonus) * base
	s.total += score

	entry := BallScore{
		Index:   s.balls,
		Frame:   s.frames,
		Symbol:  c,
		Score:   score,
		Running: s.total,
	}

	switch c {
	case SymbolStrike:
		// A strike ends its frame on one ball and credits the next two.
		s.secondBall = false
		s.frames++
		s.currentBonus = s.nextBonus + inBase
		s.nextBonus = inBase
	case SymbolSpare:
		// A spare ends its frame and credits the next ball only.
		s.secondBall = false
		s.frames++
		s.currentBonus = s.nextBonus + inBase
		s.nextBonus = 0
	default:
		if s.secondBall {
			s.frames++
			s.secondBall = false
		} else {
			s.secondBall = true
		}
		s.currentBonus = s.nextBonus
		s.nextBonus = 0
	}
	s.lastBall = base
	s.balls++

	return entry, nil
}

// Finish returns the final total. It fails with ErrIncompleteGame when
// fewer than ten frames were scored, or when a tenth-frame strike or
// spare is still owed bonus balls: outstanding credits at end of input
// mean the game is short exactly those balls.
func (s *StreamScorer) Finish() (int, error) {
	if s.frames < gameFrames {
		return 0, fmt.Errorf("%w: %d of %d frames", ErrIncompleteGame, s.frames, gameFrames)
	}
	if !s.Done() {
		return 0, fmt.Errorf("%w: missing bonus balls after frame %d", ErrIncompleteGame, gameFrames)
	}
	return s.total, nil
}

// ScoreStream scores ball symbols from r until the game is fully scored,
// the line ends, or the input is exhausted, and returns the per-ball trace
// along with the total. Symbols after the game is done are left unread.
func ScoreStream(r io.Reader) (StreamScore, error) {
	br := bufio.NewReader(r)
	var scorer StreamScorer
	var balls []BallScore

	for !scorer.Done() {
		c, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return StreamScore{}, fmt.Errorf("read score line: %w", err)
		}
		if c == '\n' || c == '\r' {
			break
		}

		entry, err := scorer.Roll(c)
		if err != nil {
			return StreamScore{}, err
		}
		balls = append(balls, entry)
	}

	total, err := scorer.Finish()
	if err != nil {
		return StreamScore{}, err
	}
	return StreamScore{Balls: balls, Total: total}, nil
}
