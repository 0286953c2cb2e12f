package ting

import (
	"errors"
	"fmt"
)

const (
	SuitMan = iota // m
	SuitPin        // p
	SuitSou        // s
	SuitZi         // z
	SuitCount
)

const (
	KindCount    = 34 // 9*3 + 7
	SameKindMax  = 4
	honorKindMin = 27
)

var (
	ErrTileCount    = errors.New("ting: invalid tile count")
	ErrTileOverflow = errors.New("ting: more than 4 copies of a tile")
	ErrInvalidTile  = errors.New("ting: invalid tile")
)

// Kind 牌种下标 0..33，按 m p s z 排列
type Kind int

func MakeKind(suit, rank int) Kind {
	return Kind(suit*9 + rank - 1)
}

func (k Kind) Suit() int {
	return int(k) / 9
}

func (k Kind) Rank() int {
	return int(k)%9 + 1
}

func (k Kind) IsValid() bool {
	return k >= 0 && k < KindCount
}

func (k Kind) IsHonor() bool {
	return k >= honorKindMin && k < KindCount
}

// IsYaoJiu 幺九牌（老头牌+字牌）
func (k Kind) IsYaoJiu() bool {
	if k.IsHonor() {
		return true
	}
	r := k.Rank()
	return k.IsValid() && (r == 1 || r == 9)
}

func (k Kind) String() string {
	if !k.IsValid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return fmt.Sprintf("%d%c", k.Rank(), "mpsz"[k.Suit()])
}

// Hand 求解器的手牌格式：每个花色一组点数（1..9，字牌 1..7）
type Hand [SuitCount][]int

// Len 手牌张数
func (h Hand) Len() int {
	n := 0
	for _, ranks := range h {
		n += len(ranks)
	}
	return n
}

// counts 转成按牌种计数的数组，同时校验点数与张数上限
func (h Hand) counts() (Counts, error) {
	var c Counts
	for suit, ranks := range h {
		maxRank := 9
		if suit == SuitZi {
			maxRank = 7
		}
		for _, r := range ranks {
			if r < 1 || r > maxRank {
				return c, fmt.Errorf("%w: %d%c", ErrInvalidTile, r, "mpsz"[suit])
			}
			k := MakeKind(suit, r)
			c[k]++
			if c[k] > SameKindMax {
				return c, fmt.Errorf("%w: %s", ErrTileOverflow, k)
			}
		}
	}
	return c, nil
}

// Counts 按牌种计数
type Counts [KindCount]int

func (c *Counts) total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Ukeire 进张：牌种 -> 剩余枚数
type Ukeire map[Kind]int

// Total 进张总枚数
func (u Ukeire) Total() int {
	n := 0
	for _, v := range u {
		n += v
	}
	return n
}

// Result 对应 calUkeire 的返回
// 3n+2 手牌时 NormalDiscard 非 nil（RecedingDiscard 仅在存在退向打法时非 nil），
// 3n+1 手牌时只填 Ukeire 与 TotalUkeire。
type Result struct {
	Shanten         int
	NormalDiscard   map[Kind]Ukeire
	RecedingDiscard map[Kind]Ukeire
	Ukeire          Ukeire
	TotalUkeire     int
}
