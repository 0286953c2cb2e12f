package nanikiru

import (
	"runtime/debug"
	"strings"

	"github.com/topfreegames/pitaya/v3/pkg/logger"

	"github.com/kevin-chtw/tw_nanikiru/mahjong"
	"github.com/kevin-chtw/tw_nanikiru/ting"
)

// InvalidShanten 无法计算的手牌
const InvalidShanten = -1

// Solver 向听/进张计算器
type Solver interface {
	CalUkeire(hand ting.Hand) (*ting.Result, error)
}

// DiscardCandidate 一种打法
type DiscardCandidate struct {
	Tile        mahjong.Tile   // 打出的牌（赤五已归一）
	Display     string         // 手牌中的原始写法，同时有赤五和普通五时取普通五
	Shanten     int            // 打出后的向听
	Ukeire      int            // 进张总枚数
	UkeireTiles []mahjong.Tile // 进张牌种，理牌顺序
}

// EvaluationResult 一手牌的计算结果。BestDiscards 按优劣排序，摸牌阶段为空。
type EvaluationResult struct {
	Shanten      int
	Ukeire       int
	BestDiscards []DiscardCandidate
}

func invalidResult() EvaluationResult {
	return EvaluationResult{
		Shanten:      InvalidShanten,
		Ukeire:       0,
		BestDiscards: []DiscardCandidate{},
	}
}

func (r EvaluationResult) IsValid() bool {
	return r.Shanten != InvalidShanten
}

// Best 最优打法
func (r EvaluationResult) Best() (DiscardCandidate, bool) {
	if len(r.BestDiscards) == 0 {
		return DiscardCandidate{}, false
	}
	return r.BestDiscards[0], true
}

// Candidate 查找打出 tile 对应的打法，赤五按普通五查找
func (r EvaluationResult) Candidate(tile mahjong.Tile) (DiscardCandidate, bool) {
	tile = mahjong.NormalizeRed(tile)
	for _, c := range r.BestDiscards {
		if c.Tile == tile {
			return c, true
		}
	}
	return DiscardCandidate{}, false
}

// Evaluator 何切计算。无内部状态，可并发使用。
type Evaluator struct {
	solver Solver
}

func NewEvaluator(solver Solver) *Evaluator {
	return &Evaluator{solver: solver}
}

// Evaluate hand 为简写牌列表，如 ["1m", "2m", "0p"]
func (e *Evaluator) Evaluate(hand []string) EvaluationResult {
	tiles := make([]mahjong.Tile, 0, len(hand))
	for _, text := range hand {
		tiles = append(tiles, mahjong.Parse(text)...)
	}
	return e.EvaluateTiles(tiles)
}

// EvaluateText text 为紧凑写法，如 "123m406p"
func (e *Evaluator) EvaluateText(text string) EvaluationResult {
	return e.EvaluateTiles(mahjong.Parse(text))
}

// EvaluateTiles 任何失败都返回 Shanten 为 -1 的结果，不会返回错误或 panic
func (e *Evaluator) EvaluateTiles(hand []mahjong.Tile) (res EvaluationResult) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Errorf("panic recovered %s\n %s", r, string(debug.Stack()))
			res = invalidResult()
		}
	}()

	display := make(map[mahjong.Tile]string, len(hand))
	normalized := make([]mahjong.Tile, len(hand))
	for i, t := range hand {
		n := mahjong.NormalizeRed(t)
		normalized[i] = n
		if _, ok := display[n]; !ok || !t.IsRed() {
			display[n] = t.String()
		}
	}

	solverHand, err := mahjong.ToSolverHand(normalized)
	if err != nil {
		logger.Log.Errorf("mahjong calculation error: %v", err)
		return invalidResult()
	}
	raw, err := e.solver.CalUkeire(solverHand)
	if err != nil {
		logger.Log.Errorf("mahjong calculation error: hand %s: %v", handText(hand), err)
		return invalidResult()
	}
	if raw == nil {
		logger.Log.Errorf("mahjong calculation error: hand %s: empty result", handText(hand))
		return invalidResult()
	}
	return classify(raw).evaluate(display)
}

func handText(hand []mahjong.Tile) string {
	return strings.Join(mahjong.TilesText(hand), "")
}
