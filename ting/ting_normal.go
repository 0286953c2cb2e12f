package ting

import (
	"sync"
)

// blockRecord 单个花色的一种拆法：面子数 + 搭子数（对子、两面、边张、嵌张）
type blockRecord struct {
	Mentsu int8
	Taatsu int8
}

// suitCode 单花色计数编码（5 进制），作为拆分表的 key
type suitCode uint32

const honorCodeFlag suitCode = 1 << 31

func encodeSuit(counts []int, suited bool) suitCode {
	var code suitCode
	for _, n := range counts {
		code = code*5 + suitCode(n)
	}
	if !suited {
		code |= honorCodeFlag
	}
	return code
}

// TingNormal 平胡（4 面子 1 雀头）向听计算。
// 按花色拆分，单花色的所有拆法缓存在 table 中，可并发使用。
type TingNormal struct {
	table sync.Map // suitCode -> []blockRecord
}

func NewTingNormal() *TingNormal {
	return &TingNormal{}
}

// TableSize 已缓存的单花色拆分数
func (t *TingNormal) TableSize() int {
	n := 0
	t.table.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// CalcShanten 平胡向听数，和牌为 -1
func (t *TingNormal) CalcShanten(c *Counts) int {
	groups := c.total() / 3
	shanten := t.checkTingStep(c, groups, false)
	for k := range c {
		if c[k] < 2 {
			continue
		}
		c[k] -= 2
		if s := t.checkTingStep(c, groups, true); s < shanten {
			shanten = s
		}
		c[k] += 2
	}
	return shanten
}

func (t *TingNormal) checkTingStep(c *Counts, groups int, hasJiang bool) int {
	combined := map[blockRecord]struct{}{{}: {}}
	for suit := range SuitCount {
		begin := suit * 9
		end := begin + 9
		if suit == SuitZi {
			end = KindCount
		}
		parts := t.checkPartCounts(c[begin:end], suit != SuitZi)
		next := make(map[blockRecord]struct{}, len(combined)*len(parts))
		for a := range combined {
			for _, b := range parts {
				next[blockRecord{Mentsu: a.Mentsu + b.Mentsu, Taatsu: a.Taatsu + b.Taatsu}] = struct{}{}
			}
		}
		combined = next
	}

	best := MaxTing
	for rec := range combined {
		if step := calcStep(rec, groups, hasJiang); step < best {
			best = step
		}
	}
	return best
}

// calcStep 向听 = 2*面子目标 - 2*面子 - 搭子 - 雀头，面子+搭子不超过面子目标
func calcStep(rec blockRecord, groups int, hasJiang bool) int {
	mentsu, taatsu := int(rec.Mentsu), int(rec.Taatsu)
	if mentsu > groups {
		mentsu = groups
	}
	if mentsu+taatsu > groups {
		taatsu = groups - mentsu
	}
	step := 2*groups - 2*mentsu - taatsu
	if hasJiang {
		step--
	}
	return step
}

func (t *TingNormal) checkPartCounts(counts []int, suited bool) []blockRecord {
	code := encodeSuit(counts, suited)
	if v, ok := t.table.Load(code); ok {
		return v.([]blockRecord)
	}
	b := &bestCombineCalc{
		counts: append([]int(nil), counts...),
		suited: suited,
		found:  make(map[blockRecord]struct{}),
	}
	records := b.doCheck()
	t.table.Store(code, records)
	return records
}

// bestCombineCalc 穷举单花色的面子/搭子拆法
type bestCombineCalc struct {
	counts []int
	suited bool
	found  map[blockRecord]struct{}
}

func (b *bestCombineCalc) doCheck() []blockRecord {
	b.doPick(0, blockRecord{})
	records := make([]blockRecord, 0, len(b.found))
	for rec := range b.found {
		if !b.dominated(rec) {
			records = append(records, rec)
		}
	}
	return records
}

// dominated 存在面子与搭子都不少于 rec 的其他拆法
func (b *bestCombineCalc) dominated(rec blockRecord) bool {
	for other := range b.found {
		if other != rec && other.Mentsu >= rec.Mentsu && other.Taatsu >= rec.Taatsu {
			return true
		}
	}
	return false
}

func (b *bestCombineCalc) doPick(index int, st blockRecord) {
	c := b.counts
	for index < len(c) && c[index] == 0 {
		index++
	}
	if index == len(c) {
		b.found[st] = struct{}{}
		return
	}
	b.pickKe(index, st)
	b.pickShun(index, st)
	b.pickKe2(index, st)
	b.pickShun2(index, st, 1)
	b.pickShun2(index, st, 2)

	// 当作孤张
	c[index]--
	b.doPick(index, st)
	c[index]++
}

func (b *bestCombineCalc) pickKe(index int, st blockRecord) {
	if b.counts[index] < 3 {
		return
	}
	b.counts[index] -= 3
	st.Mentsu++
	b.doPick(index, st)
	b.counts[index] += 3
}

func (b *bestCombineCalc) pickShun(index int, st blockRecord) {
	c := b.counts
	if !b.suited || index+2 >= len(c) || c[index+1] == 0 || c[index+2] == 0 {
		return
	}
	c[index]--
	c[index+1]--
	c[index+2]--
	st.Mentsu++
	b.doPick(index, st)
	c[index]++
	c[index+1]++
	c[index+2]++
}

func (b *bestCombineCalc) pickKe2(index int, st blockRecord) {
	if b.counts[index] < 2 {
		return
	}
	b.counts[index] -= 2
	st.Taatsu++
	b.doPick(index, st)
	b.counts[index] += 2
}

// pickShun2 两面/边张（gap=1）与嵌张（gap=2）
func (b *bestCombineCalc) pickShun2(index int, st blockRecord, gap int) {
	c := b.counts
	if !b.suited || index+gap >= len(c) || c[index+gap] == 0 {
		return
	}
	c[index]--
	c[index+gap]--
	st.Taatsu++
	b.doPick(index, st)
	c[index]++
	c[index+gap]++
}
