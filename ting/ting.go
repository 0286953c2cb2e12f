package ting

import (
	"fmt"
	"strings"
)

const MaxTing = 99

const (
	RuleRiichi = "Riichi"
	RuleNormal = "Normal"
)

// calcStepTo13Yao 国士无双向听
func calcStepTo13Yao(c *Counts) int {
	kinds, hasPair := 0, false
	for k := range c {
		if !Kind(k).IsYaoJiu() || c[k] == 0 {
			continue
		}
		kinds++
		if c[k] >= 2 {
			hasPair = true
		}
	}
	step := 13 - kinds
	if hasPair {
		step--
	}
	return step
}

// checkQiDuiStep 七对子向听，四张相同不算两对
func checkQiDuiStep(c *Counts) int {
	pairs, kinds := 0, 0
	for _, n := range c {
		if n > 0 {
			kinds++
		}
		if n >= 2 {
			pairs++
		}
	}
	step := 6 - pairs
	if kinds < 7 {
		step += 7 - kinds
	}
	return step
}

type Option func(*RuleSet)

// WithHandCount 打牌前的手牌张数（3n+2），默认 14
func WithHandCount(n int) Option {
	return func(r *RuleSet) {
		r.handCount = n
	}
}

// RuleSet 一套向听/进张计算规则。创建后只读，可并发使用。
type RuleSet struct {
	name        string
	handCount   int
	qiDui       bool
	thirteenYao bool
	normalTool  *TingNormal
}

// NewRuleSet Riichi: 平胡+七对+国士，门清 13/14 张；Normal: 只算平胡
func NewRuleSet(name string, opts ...Option) (*RuleSet, error) {
	r := &RuleSet{
		handCount:  14,
		normalTool: NewTingNormal(),
	}
	switch {
	case strings.EqualFold(name, RuleRiichi):
		r.name = RuleRiichi
		r.qiDui = true
		r.thirteenYao = true
	case strings.EqualFold(name, RuleNormal):
		r.name = RuleNormal
	default:
		return nil, fmt.Errorf("ting: unknown rule %q", name)
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.handCount < 2 || r.handCount%3 != 2 {
		return nil, fmt.Errorf("%w: hand count %d", ErrTileCount, r.handCount)
	}
	if r.name == RuleRiichi && r.handCount != 14 {
		return nil, fmt.Errorf("%w: riichi hands hold 14 tiles, got %d", ErrTileCount, r.handCount)
	}
	return r, nil
}

func (r *RuleSet) Name() string {
	return r.name
}

// HandCount 打牌阶段的手牌张数
func (r *RuleSet) HandCount() int {
	return r.handCount
}

// CalShanten 向听数：3n+1 为当前向听，3n+2 为打出一张后能达到的最小向听
func (r *RuleSet) CalShanten(hand Hand) (int, error) {
	c, err := r.checkHand(hand)
	if err != nil {
		return MaxTing, err
	}
	if c.total() == r.handCount {
		shanten := MaxTing
		for k := range c {
			if c[k] == 0 {
				continue
			}
			c[k]--
			if s := r.calcShanten(&c); s < shanten {
				shanten = s
			}
			c[k]++
		}
		return shanten, nil
	}
	return r.calcShanten(&c), nil
}

// CalUkeire 3n+1 返回进张；3n+2 按打出的牌分组返回进张，
// 保持向听的打法在 NormalDiscard，向听后退一步的在 RecedingDiscard。
func (r *RuleSet) CalUkeire(hand Hand) (*Result, error) {
	c, err := r.checkHand(hand)
	if err != nil {
		return nil, err
	}
	if c.total() == r.handCount-1 {
		shanten := r.calcShanten(&c)
		ukeire := r.calcUkeire(&c, &c, shanten)
		return &Result{
			Shanten:     shanten,
			Ukeire:      ukeire,
			TotalUkeire: ukeire.Total(),
		}, nil
	}

	visible := c
	discards := make(map[Kind]int)
	shanten := MaxTing
	for k := range c {
		if c[k] == 0 {
			continue
		}
		c[k]--
		s := r.calcShanten(&c)
		c[k]++
		discards[Kind(k)] = s
		if s < shanten {
			shanten = s
		}
	}

	res := &Result{
		Shanten:       shanten,
		NormalDiscard: make(map[Kind]Ukeire),
	}
	for kind, s := range discards {
		c[kind]--
		switch s {
		case shanten:
			res.NormalDiscard[kind] = r.calcUkeire(&c, &visible, s)
		case shanten + 1:
			if res.RecedingDiscard == nil {
				res.RecedingDiscard = make(map[Kind]Ukeire)
			}
			res.RecedingDiscard[kind] = r.calcUkeire(&c, &visible, s)
		}
		c[kind]++
	}
	return res, nil
}

func (r *RuleSet) checkHand(hand Hand) (Counts, error) {
	n := hand.Len()
	if n != r.handCount && n != r.handCount-1 {
		return Counts{}, fmt.Errorf("%w: %d (want %d or %d)", ErrTileCount, n, r.handCount-1, r.handCount)
	}
	return hand.counts()
}

func (r *RuleSet) calcShanten(c *Counts) int {
	shanten := r.normalTool.CalcShanten(c)
	if c.total() < 13 {
		return shanten
	}
	if r.qiDui {
		shanten = min(shanten, checkQiDuiStep(c))
	}
	if r.thirteenYao {
		shanten = min(shanten, calcStepTo13Yao(c))
	}
	return shanten
}

// calcUkeire 摸到后向听数下降的牌种及剩余枚数（扣除 visible 中已见的张数）
func (r *RuleSet) calcUkeire(c, visible *Counts, shanten int) Ukeire {
	ukeire := make(Ukeire)
	for k := range c {
		rest := SameKindMax - visible[k]
		if rest <= 0 || c[k] >= SameKindMax {
			continue
		}
		c[k]++
		if r.calcShanten(c) < shanten {
			ukeire[Kind(k)] = rest
		}
		c[k]--
	}
	return ukeire
}
