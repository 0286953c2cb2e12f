package mahjong

import "errors"

type EColor int

const (
	ColorUndefined EColor = -1
	ColorCharacter EColor = iota - 1 // 万 m
	ColorDot                         // 筒 p
	ColorBamboo                      // 索 s
	ColorWind                        // 风牌 1z-4z
	ColorDragon                      // 三元牌 5z-7z
	ColorEnd
	ColorBegin = ColorCharacter
)

var PointCountByColor = [ColorEnd]int{9, 9, 9, 4, 3}
var SEQ_BEGIN_BY_COLOR = [ColorEnd]int{0, 9, 18, 27, 31}

const (
	SameTileCount       = 4
	KindCount           = 34
	TileCountTotal      = KindCount * SameTileCount
	TileCountInitBanker = 14
	TileCountInitNormal = 13
)

// 牌的标记位
const (
	FlagNormal = 1
	FlagRed    = 2 // 赤五
)

var (
	ErrDrawSize     = errors.New("mahjong: draw size out of range")
	ErrTileOverflow = errors.New("mahjong: tile supply exceeded")
	ErrInvalidTile  = errors.New("mahjong: invalid tile")
)
