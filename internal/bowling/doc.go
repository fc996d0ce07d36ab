// Package bowling scores ten-pin bowling games from their compact textual
// encoding, where each character records one ball: digits 1-9 for pins,
// '-' for a miss, 'X' for a strike, and '/' for a spare.
//
// The package provides two independent scorers for the same rules:
//   - Tokenize + ScoreFrames: splits the line into frames and scores each
//     frame with lookahead into the following frames for strike and spare
//     bonuses, the way bowlers score on paper.
//   - StreamScorer / ScoreStream: a single-pass state machine that weights
//     each ball by the bonus multipliers owed from earlier strikes and
//     spares, never materializing a frame list.
//
// Both produce identical totals for every legal game.
package bowling
