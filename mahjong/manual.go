package mahjong

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/spf13/viper"
)

// Manual 预设牌型（练习题）。配置示例：
//
//	enable: true
//	cards:
//	  - "123m456p"
//	  - "19m19p19s1234567z"
//
// 每道题给出部分手牌，其余从牌墙随机补足。
type Manual struct {
	vp     *viper.Viper
	groups [][]Tile
	next   atomic.Uint64
}

// NewManual 从配置子树读取预设牌型，vp 为 nil 时返回 nil
func NewManual(vp *viper.Viper) (*Manual, error) {
	if vp == nil {
		return nil, nil
	}
	m := &Manual{vp: vp}
	for i, cards := range vp.GetStringSlice("cards") {
		tiles, err := ParseStrict(cards)
		if err != nil {
			return nil, fmt.Errorf("manual cards[%d]: %w", i, err)
		}
		m.groups = append(m.groups, tiles)
	}
	return m, nil
}

// LoadManual 读取单独的预设牌型文件
func LoadManual(file string) (*Manual, error) {
	vp := viper.New()
	vp.SetConfigType("yaml")
	vp.SetConfigFile(file)
	if err := vp.ReadInConfig(); err != nil {
		return nil, err
	}
	return NewManual(vp)
}

func (m *Manual) Enabled() bool {
	if m == nil {
		return false
	}
	return m.vp.GetBool("enable") && len(m.groups) > 0
}

// Count 预设题数
func (m *Manual) Count() int {
	if m == nil {
		return 0
	}
	return len(m.groups)
}

// Load 依次取下一道题，并用 dealer 补足到 handCount 张
func (m *Manual) Load(d *Dealer, handCount int) ([]Tile, error) {
	if !m.Enabled() {
		return nil, errors.New("mahjong: manual disabled")
	}
	i := (m.next.Add(1) - 1) % uint64(len(m.groups))
	return d.Fill(m.groups[i], handCount)
}
