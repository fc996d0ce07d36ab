package bowling

import (
	"errors"
	"strings"
	"testing"
)

func TestScoreStream_DocumentedExample(t *testing.T) {
	result, err := ScoreStream(strings.NewReader("X7/9-X-88/-6XXX81"))
	if err != nil {
		t.Fatalf("ScoreStream returned error: %v", err)
	}
	if result.Total != 167 {
		t.Fatalf("total = %d, want 167", result.Total)
	}

	// Weighted per-ball scores and running totals from the worked example.
	wantScores := []int{10, 14, 6, 18, 0, 10, 0, 16, 8, 2, 0, 6, 10, 20, 30, 16, 1}
	wantRunning := []int{10, 24, 30, 48, 48, 58, 58, 74, 82, 84, 84, 90, 100, 120, 150, 166, 167}
	if len(result.Balls) != len(wantScores) {
		t.Fatalf("scored %d balls, want %d", len(result.Balls), len(wantScores))
	}
	for i, ball := range result.Balls {
		if ball.Index != i {
			t.Fatalf("ball %d has index %d", i, ball.Index)
		}
		if ball.Score != wantScores[i] {
			t.Fatalf("ball %d (%c) score = %d, want %d", i, ball.Symbol, ball.Score, wantScores[i])
		}
		if ball.Running != wantRunning[i] {
			t.Fatalf("ball %d (%c) running total = %d, want %d", i, ball.Symbol, ball.Running, wantRunning[i])
		}
	}
}

func TestScoreStream_Totals(t *testing.T) {
	tests := []struct {
		name string
		line string
		want int
	}{
		{"all misses", strings.Repeat("--", 10), 0},
		{"perfect game", strings.Repeat("X", 12), 300},
		{"all nines", strings.Repeat("9-", 10), 90},
		{"all spares on five", strings.Repeat("5/", 10) + "5", 150},
		{"tenth frame spare with bonus", strings.Repeat("--", 9) + "9/5", 15},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ScoreStream(strings.NewReader(tc.line))
			if err != nil {
				t.Fatalf("ScoreStream(%q) returned error: %v", tc.line, err)
			}
			if result.Total != tc.want {
				t.Fatalf("ScoreStream(%q) = %d, want %d", tc.line, result.Total, tc.want)
			}
		})
	}
}

func TestScoreStream_StopsOnceGameIsDone(t *testing.T) {
	// Symbols after the game is fully scored never reach the scorer, even
	// ones that would otherwise be rejected.
	result, err := ScoreStream(strings.NewReader(strings.Repeat("--", 10) + "??"))
	if err != nil {
		t.Fatalf("ScoreStream returned error: %v", err)
	}
	if result.Total != 0 {
		t.Fatalf("total = %d, want 0", result.Total)
	}
	if len(result.Balls) != 20 {
		t.Fatalf("scored %d balls, want 20", len(result.Balls))
	}
}

func TestScoreStream_StopsAtNewline(t *testing.T) {
	if _, err := ScoreStream(strings.NewReader("X7/\n")); !errors.Is(err, ErrIncompleteGame) {
		t.Fatalf("error = %v, want ErrIncompleteGame", err)
	}
}

func TestScoreStream_IncompleteGame(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"empty input", ""},
		{"nine frames", strings.Repeat("--", 9)},
		{"tenth frame strike missing both bonus balls", strings.Repeat("--", 9) + "X"},
		{"tenth frame strike missing one bonus ball", strings.Repeat("--", 9) + "X5"},
		{"tenth frame spare missing its bonus ball", strings.Repeat("--", 9) + "9/"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ScoreStream(strings.NewReader(tc.line)); !errors.Is(err, ErrIncompleteGame) {
				t.Fatalf("ScoreStream(%q) error = %v, want ErrIncompleteGame", tc.line, err)
			}
		})
	}
}

func TestStreamScorer_BonusMultipliersStack(t *testing.T) {
	var scorer StreamScorer
	for _, c := range []byte{'X', 'X'} {
		if _, err := scorer.Roll(c); err != nil {
			t.Fatalf("Roll(%q) returned error: %v", c, err)
		}
	}

	// The ball after two consecutive strikes counts three times: once for
	// itself and once for each outstanding strike credit.
	ball, err := scorer.Roll('5')
	if err != nil {
		t.Fatalf("Roll('5') returned error: %v", err)
	}
	if ball.Score != 15 {
		t.Fatalf("ball score = %d, want 15", ball.Score)
	}
}

func TestStreamScorer_SpareResolvesAgainstPreviousBall(t *testing.T) {
	var scorer StreamScorer
	if _, err := scorer.Roll('7'); err != nil {
		t.Fatalf("Roll('7') returned error: %v", err)
	}
	ball, err := scorer.Roll('/')
	if err != nil {
		t.Fatalf("Roll('/') returned error: %v", err)
	}
	if ball.Score != 3 {
		t.Fatalf("spare ball score = %d, want 3", ball.Score)
	}
	if scorer.Frames() != 1 {
		t.Fatalf("frames = %d, want 1", scorer.Frames())
	}
}

func TestStreamScorer_RejectsOutOfPlaceSpareMarker(t *testing.T) {
	tests := []struct {
		name  string
		setup string
	}{
		{"first symbol of the game", ""},
		{"directly after a strike", "X"},
		{"directly after a spare", "7/"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var scorer StreamScorer
			for i := 0; i < len(tc.setup); i++ {
				if _, err := scorer.Roll(tc.setup[i]); err != nil {
					t.Fatalf("Roll(%q) returned error: %v", tc.setup[i], err)
				}
			}
			if _, err := scorer.Roll('/'); !errors.Is(err, ErrMalformedFrame) {
				t.Fatalf("error = %v, want ErrMalformedFrame", err)
			}
		})
	}
}

func TestStreamScorer_RejectsInvalidSymbol(t *testing.T) {
	var scorer StreamScorer
	if _, err := scorer.Roll('?'); !errors.Is(err, ErrInvalidSymbol) {
		t.Fatalf("error = %v, want ErrInvalidSymbol", err)
	}
}

func TestStreamScorer_FrameCountTracksOpenFrames(t *testing.T) {
	var scorer StreamScorer
	balls := []byte{'4', '5', 'X', '-', '3'}
	wantFrames := []int{0, 1, 2, 2, 3}
	for i, c := range balls {
		if _, err := scorer.Roll(c); err != nil {
			t.Fatalf("Roll(%q) returned error: %v", c, err)
		}
		if scorer.Frames() != wantFrames[i] {
			t.Fatalf("after ball %d frames = %d, want %d", i, scorer.Frames(), wantFrames[i])
		}
	}
}

func TestStreamScorer_FinishWithOutstandingBonusCredits(t *testing.T) {
	// Ten frames complete, but the tenth-frame strike is still owed one
	// of its two bonus balls: the remaining credit must fail Finish.
	var scorer StreamScorer
	line := strings.Repeat("--", 9) + "X5"
	for i := 0; i < len(line); i++ {
		if _, err := scorer.Roll(line[i]); err != nil {
			t.Fatalf("Roll(%q) returned error: %v", line[i], err)
		}
	}
	if scorer.Frames() != 10 {
		t.Fatalf("frames = %d, want 10", scorer.Frames())
	}
	if scorer.Done() {
		t.Fatal("expected outstanding bonus credit to keep the game open")
	}
	if _, err := scorer.Finish(); !errors.Is(err, ErrIncompleteGame) {
		t.Fatalf("Finish error = %v, want ErrIncompleteGame", err)
	}
}

func TestStreamScorer_FinishBeforeTenFrames(t *testing.T) {
	var scorer StreamScorer
	if _, err := scorer.Roll('X'); err != nil {
		t.Fatalf("Roll('X') returned error: %v", err)
	}
	if _, err := scorer.Finish(); !errors.Is(err, ErrIncompleteGame) {
		t.Fatalf("Finish error = %v, want ErrIncompleteGame", err)
	}
}
