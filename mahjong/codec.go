package mahjong

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kevin-chtw/tw_nanikiru/ting"
)

// 花色字母 -> 颜色（字牌另行处理）
var suitToColor = map[rune]EColor{
	'm': ColorCharacter,
	'p': ColorDot,
	's': ColorBamboo,
}

var colorToSolverSuit = [ColorEnd]int{
	ColorCharacter: ting.SuitMan,
	ColorDot:       ting.SuitPin,
	ColorBamboo:    ting.SuitSou,
	ColorWind:      ting.SuitZi,
	ColorDragon:    ting.SuitZi,
}

// makeCompactTile 点数 + 花色字母 -> 牌
func makeCompactTile(rank int, suit rune) Tile {
	if suit == 'z' {
		switch {
		case rank >= 1 && rank <= 4:
			return MakeTile(ColorWind, rank-1)
		case rank >= 5 && rank <= 7:
			return MakeTile(ColorDragon, rank-5)
		}
		return TileNull
	}
	color, ok := suitToColor[suit]
	if !ok || rank < 0 || rank > 9 {
		return TileNull
	}
	if rank == 0 {
		return MakeSpecialTile(color, 4, FlagRed)
	}
	return MakeTile(color, rank-1)
}

// Parse 解析 "123m406p11z" 这类简写：数字先缓存，遇到花色字母时逐个展开。
// 其它字符忽略，无效的牌（如 0z、8z）直接丢弃。
func Parse(text string) []Tile {
	tiles := make([]Tile, 0, len(text))
	var digits []int
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, int(r-'0'))
		case strings.ContainsRune("mpsz", r):
			for _, d := range digits {
				if t := makeCompactTile(d, r); t != TileNull {
					tiles = append(tiles, t)
				}
			}
			digits = digits[:0]
		}
	}
	return tiles
}

// ParseStrict 与 Parse 语法相同，但遇到任何非法输入都返回错误
func ParseStrict(text string) ([]Tile, error) {
	tiles := make([]Tile, 0, len(text))
	var digits []int
	for i, r := range text {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, int(r-'0'))
		case strings.ContainsRune("mpsz", r):
			if len(digits) == 0 {
				return nil, fmt.Errorf("%w: suit %q at %d without ranks", ErrInvalidTile, r, i)
			}
			for _, d := range digits {
				t := makeCompactTile(d, r)
				if t == TileNull {
					return nil, fmt.Errorf("%w: %d%c", ErrInvalidTile, d, r)
				}
				tiles = append(tiles, t)
			}
			digits = digits[:0]
		case r == ' ' || r == ',':
		default:
			return nil, fmt.Errorf("%w: unexpected %q at %d", ErrInvalidTile, r, i)
		}
	}
	if len(digits) > 0 {
		return nil, fmt.Errorf("%w: ranks without suit in %q", ErrInvalidTile, text)
	}
	return tiles, nil
}

// NormalizeRed 赤五 -> 普通五，其余不变
func NormalizeRed(t Tile) Tile {
	if t.IsRed() {
		return MakeTile(t.Color(), t.Point())
	}
	return t
}

// TilesText 转成简写列表，如 ["1m", "0p"]
func TilesText(tiles []Tile) []string {
	res := make([]string, len(tiles))
	for i, t := range tiles {
		res[i] = t.String()
	}
	return res
}

// JoinText 紧凑写法，同花色连续的牌合并，如 "123m55p"
func JoinText(tiles []Tile) string {
	var sb strings.Builder
	for i, t := range tiles {
		sb.WriteString(strconv.Itoa(t.Rank()))
		if i == len(tiles)-1 || tiles[i+1].Suit() != t.Suit() {
			sb.WriteByte(t.Suit())
		}
	}
	return sb.String()
}

// ToSolverHand 转成求解器的分花色格式，赤五按普通五处理
func ToSolverHand(tiles []Tile) (ting.Hand, error) {
	var hand ting.Hand
	for _, t := range tiles {
		if !t.IsValid() {
			return hand, fmt.Errorf("%w: %d", ErrInvalidTile, t)
		}
		t = NormalizeRed(t)
		suit := colorToSolverSuit[t.Color()]
		hand[suit] = append(hand[suit], t.Rank())
	}
	return hand, nil
}

// FromKind 求解器牌种 -> 牌
func FromKind(k ting.Kind) Tile {
	if !k.IsValid() {
		return TileNull
	}
	return makeCompactTile(k.Rank(), rune("mpsz"[k.Suit()]))
}
