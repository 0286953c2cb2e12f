package nanikiru

import (
	"cmp"
	"maps"
	"slices"

	"github.com/kevin-chtw/tw_nanikiru/mahjong"
	"github.com/kevin-chtw/tw_nanikiru/ting"
)

// phase 求解器结果的两种形态，只在 classify 里判定一次
type phase interface {
	evaluate(display map[mahjong.Tile]string) EvaluationResult
}

// drawPhase 3n+1：只有整体进张，没有打牌选择
type drawPhase struct {
	shanten     int
	totalUkeire int
}

// discardPhase 3n+2：按打出的牌分组的进张
type discardPhase struct {
	shanten  int
	normal   map[ting.Kind]ting.Ukeire
	receding map[ting.Kind]ting.Ukeire
}

// classify 有 NormalDiscard 即为打牌阶段
func classify(res *ting.Result) phase {
	if res.NormalDiscard != nil {
		return &discardPhase{
			shanten:  res.Shanten,
			normal:   res.NormalDiscard,
			receding: res.RecedingDiscard,
		}
	}
	return &drawPhase{
		shanten:     res.Shanten,
		totalUkeire: res.TotalUkeire,
	}
}

func (p *drawPhase) evaluate(map[mahjong.Tile]string) EvaluationResult {
	return EvaluationResult{
		Shanten:      p.shanten,
		Ukeire:       p.totalUkeire,
		BestDiscards: []DiscardCandidate{},
	}
}

func (p *discardPhase) evaluate(display map[mahjong.Tile]string) EvaluationResult {
	candidates := make([]DiscardCandidate, 0, len(p.normal)+len(p.receding))
	candidates = appendCandidates(candidates, p.normal, p.shanten, display)
	candidates = appendCandidates(candidates, p.receding, p.shanten+1, display)
	sortCandidates(candidates)

	res := EvaluationResult{
		Shanten:      p.shanten,
		BestDiscards: candidates,
	}
	if len(candidates) > 0 {
		res.Ukeire = candidates[0].Ukeire
	}
	return res
}

func appendCandidates(out []DiscardCandidate, group map[ting.Kind]ting.Ukeire, shanten int, display map[mahjong.Tile]string) []DiscardCandidate {
	for _, kind := range slices.Sorted(maps.Keys(group)) {
		ukeire := group[kind]
		tile := mahjong.FromKind(kind)
		c := DiscardCandidate{
			Tile:        tile,
			Display:     display[tile],
			Shanten:     shanten,
			Ukeire:      ukeire.Total(),
			UkeireTiles: make([]mahjong.Tile, 0, len(ukeire)),
		}
		if c.Display == "" {
			c.Display = tile.String()
		}
		for _, k := range slices.Sorted(maps.Keys(ukeire)) {
			c.UkeireTiles = append(c.UkeireTiles, mahjong.FromKind(k))
		}
		out = append(out, c)
	}
	return out
}

// sortCandidates 向听小的在前，同向听进张多的在前，再按理牌顺序
func sortCandidates(candidates []DiscardCandidate) {
	slices.SortStableFunc(candidates, func(a, b DiscardCandidate) int {
		if c := cmp.Compare(a.Shanten, b.Shanten); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Ukeire, a.Ukeire); c != 0 {
			return c
		}
		return cmp.Compare(a.Tile, b.Tile)
	})
}
