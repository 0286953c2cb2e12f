package nanikiru

import (
	"errors"
	"fmt"

	"github.com/kevin-chtw/tw_nanikiru/mahjong"
)

var (
	ErrNoDecision = errors.New("nanikiru: hand has no discard decision")
	ErrNotInHand  = errors.New("nanikiru: tile not in hand")
)

// Verdict 玩家打牌的判定
type Verdict struct {
	Correct bool
	Chosen  DiscardCandidate
	Best    DiscardCandidate
}

// Judge 打出的牌与最优打法的向听、进张都相同即为正确
func Judge(result EvaluationResult, tile string) (Verdict, error) {
	best, ok := result.Best()
	if !result.IsValid() || !ok {
		return Verdict{}, ErrNoDecision
	}
	tiles := mahjong.Parse(tile)
	if len(tiles) != 1 {
		return Verdict{Best: best}, fmt.Errorf("%w: %q", ErrNotInHand, tile)
	}
	chosen, ok := result.Candidate(tiles[0])
	if !ok {
		return Verdict{Best: best}, fmt.Errorf("%w: %s", ErrNotInHand, tile)
	}
	return Verdict{
		Correct: chosen.Shanten == best.Shanten && chosen.Ukeire == best.Ukeire,
		Chosen:  chosen,
		Best:    best,
	}, nil
}
