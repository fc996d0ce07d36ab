package bowling

import "fmt"

// Tokenize splits a score line into frame encodings. An 'X' stands alone
// as a one-symbol frame; any other symbol starts a two-symbol frame (or a
// one-symbol frame when the line ends mid-frame).
//
// No semantic validation happens here: malformed combinations surface
// later, when ScoreFrames decodes the offending ball.
func Tokenize(line string) []Frame {
	// 10 frames plus up to 2 bonus balls tokenized as trailing frames.
	frames := make([]Frame, 0, gameFrames+2)
	for i := 0; i < len(line); {
		if line[i] == SymbolStrike {
			frames = append(frames, Frame(line[i:i+1]))
			i++
			continue
		}
		end := min(i+2, len(line))
		frames = append(frames, Frame(line[i:end]))
		i = end
	}
	return frames
}

// ScoreFrames scores the first ten frames of a tokenized game and sums
// them. Strikes and spares look ahead into the following frames for their
// bonus balls, so the token list must extend far enough past the tenth
// frame to cover them (two bonus balls after a tenth-frame strike, one
// after a tenth-frame spare); otherwise ScoreFrames fails with
// ErrIncompleteGame.
func ScoreFrames(frames []Frame) (GameScore, error) {
	if len(frames) < gameFrames {
		return GameScore{}, fmt.Errorf("%w: %d of %d frames", ErrIncompleteGame, len(frames), gameFrames)
	}

	scores := make([]FrameScore, 0, gameFrames)
	total := 0
	for i := 0; i < gameFrames; i++ {
		frame := frames[i]

		var score int
		var err error
		switch {
		case frame.IsStrike():
			score, err = scoreStrike(i, frames)
		case frame.IsSpare():
			score, err = scoreSpare(i, frames)
		case len(frame) == 2:
			score, err = scoreOpen(frame)
		default:
			err = fmt.Errorf("%w: frame %d encoded as %q", ErrMalformedFrame, i+1, frame)
		}
		if err != nil {
			return GameScore{}, err
		}

		scores = append(scores, FrameScore{Number: i + 1, Frame: frame, Score: score})
		total += score
	}

	return GameScore{Frames: scores, Total: total}, nil
}

// scoreStrike scores a strike: 10 pins plus the value of the next two
// balls.
func scoreStrike(i int, frames []Frame) (int, error) {
	first, err := firstBonusBall(i+1, frames)
	if err != nil {
		return 0, err
	}
	second, err := secondBonusBall(i+1, frames)
	if err != nil {
		return 0, err
	}
	return 10 + first + second, nil
}

// scoreSpare scores a spare: 10 pins plus the value of the next ball.
func scoreSpare(i int, frames []Frame) (int, error) {
	bonus, err := firstBonusBall(i+1, frames)
	if err != nil {
		return 0, err
	}
	return 10 + bonus, nil
}

// scoreOpen scores an open frame: the sum of its two balls, no bonus.
func scoreOpen(frame Frame) (int, error) {
	first, err := BallValue(frame[0])
	if err != nil {
		return 0, err
	}
	second, err := BallValue(frame[1])
	if err != nil {
		return 0, err
	}
	return first + second, nil
}

// firstBonusBall is the value of the first ball thrown in frame i. It is
// always encoded literally as the frame's first symbol.
func firstBonusBall(i int, frames []Frame) (int, error) {
	if i >= len(frames) {
		return 0, fmt.Errorf("%w: missing bonus ball for frame %d", ErrIncompleteGame, i)
	}
	return BallValue(frames[i][0])
}

// secondBonusBall is the value of the second ball thrown from the start of
// frame i, which a strike in frame i-1 needs for its bonus:
//   - frame i is a strike: the second ball is the first ball of frame i+1.
//   - frame i is a spare: the second ball is not encoded literally; it is
//     whatever completed the 10 pins, so 10 minus the frame's first ball.
//   - otherwise: the frame's second symbol.
func secondBonusBall(i int, frames []Frame) (int, error) {
	if i >= len(frames) {
		return 0, fmt.Errorf("%w: missing bonus ball for frame %d", ErrIncompleteGame, i)
	}
	frame := frames[i]
	if frame.IsStrike() {
		return firstBonusBall(i+1, frames)
	}
	if len(frame) < 2 {
		return 0, fmt.Errorf("%w: missing second bonus ball in frame %d", ErrIncompleteGame, i)
	}
	if frame.IsSpare() {
		first, err := BallValue(frame[0])
		if err != nil {
			return 0, err
		}
		return 10 - first, nil
	}
	return BallValue(frame[1])
}
