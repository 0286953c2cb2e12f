package mahjong

import (
	"slices"
	"strconv"
	"strings"
)

var (
	TileNull   Tile = -1
	TileInf    Tile = MakeTile(ColorEnd, 0)                      // 无效牌
	TileDong   Tile = MakeTile(ColorWind, 0)                     // 東 1z
	TileNan    Tile = MakeTile(ColorWind, 1)                     // 南 2z
	TileXi     Tile = MakeTile(ColorWind, 2)                     // 西 3z
	TileBei    Tile = MakeTile(ColorWind, 3)                     // 北 4z
	TileBai    Tile = MakeTile(ColorDragon, 0)                   // 白 5z
	TileFa     Tile = MakeTile(ColorDragon, 1)                   // 發 6z
	TileZhong  Tile = MakeTile(ColorDragon, 2)                   // 中 7z
	TileRedMan Tile = MakeSpecialTile(ColorCharacter, 4, FlagRed) // 0m
	TileRedPin Tile = MakeSpecialTile(ColorDot, 4, FlagRed)       // 0p
	TileRedSou Tile = MakeSpecialTile(ColorBamboo, 4, FlagRed)    // 0s
)

// Tile 牌：color<<8 | point<<4 | flag，整数大小即 m p s z 的理牌顺序
type Tile int32

func MakeTile(color EColor, point int) Tile {
	return Tile((int(color)<<8 | (point << 4) | FlagNormal))
}

func MakeSpecialTile(color EColor, point int, flag int) Tile {
	return Tile((int(color)<<8 | (point << 4) | flag))
}

func (t Tile) Color() EColor {
	return EColor((t >> 8) & 0x0F)
}

func (t Tile) Point() int {
	return int((t >> 4) & 0x0F)
}

func (t Tile) Info() (EColor, int) {
	return t.Color(), t.Point()
}

func (t Tile) Flag() int {
	return int(t & 0x0F)
}

func (t Tile) IsValid() bool {
	if t <= 0 || t >= TileInf {
		return false
	}
	c, p := t.Info()
	if c < ColorBegin || c >= ColorEnd || p >= PointCountByColor[c] {
		return false
	}
	switch t.Flag() {
	case FlagNormal:
		return true
	case FlagRed:
		return t.IsSuit() && p == 4
	default:
		return false
	}
}

func (t Tile) IsSuit() bool { // 数牌
	c := t.Color()
	return t > 0 && c >= ColorCharacter && c <= ColorBamboo
}

func (t Tile) IsHonor() bool { // 字牌
	c := t.Color()
	return t > 0 && (c == ColorWind || c == ColorDragon)
}

func (t Tile) IsRed() bool {
	return t.Flag() == FlagRed
}

// Kind 牌种下标 0..33
func (t Tile) Kind() int {
	c, p := t.Info()
	return SEQ_BEGIN_BY_COLOR[c] + p
}

// Rank 简写中的点数：数牌 1-9（赤五为 0），字牌 1-7
func (t Tile) Rank() int {
	c, p := t.Info()
	switch {
	case t.IsRed():
		return 0
	case c == ColorWind:
		return p + 1
	case c == ColorDragon:
		return p + 5
	default:
		return p + 1
	}
}

// Suit 简写中的花色字母
func (t Tile) Suit() byte {
	switch t.Color() {
	case ColorCharacter:
		return 'm'
	case ColorDot:
		return 'p'
	case ColorBamboo:
		return 's'
	default:
		return 'z'
	}
}

// String 简写形式，如 "1m"、"0p"、"7z"
func (t Tile) String() string {
	if !t.IsValid() {
		return "tile(" + strconv.Itoa(int(t)) + ")"
	}
	return strconv.Itoa(t.Rank()) + string(t.Suit())
}

func (t Tile) ToInt32() int32 {
	return int32(t)
}

func TilesName(tiles []Tile) string {
	var tileNames []string
	for _, tile := range tiles {
		tileNames = append(tileNames, Label(tile))
	}
	return strings.Join(tileNames, ", ")
}

// SortTiles 按 m p s z、点数升序理牌（原地）
func SortTiles(tiles []Tile) {
	slices.Sort(tiles)
}

// AllKinds 34 种牌，理牌顺序
func AllKinds() []Tile {
	kinds := make([]Tile, 0, KindCount)
	for c := ColorBegin; c < ColorEnd; c++ {
		for p := range PointCountByColor[c] {
			kinds = append(kinds, MakeTile(c, p))
		}
	}
	return kinds
}

func makeTiles(t Tile, count int) []Tile {
	if count <= 0 {
		return []Tile{}
	}
	res := make([]Tile, count)
	for i := range res {
		res[i] = t
	}
	return res
}
