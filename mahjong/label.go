package mahjong

import "strconv"

var honorNames = [...]string{"東", "南", "西", "北", "白", "發", "中"}

var suitGlyphs = map[EColor]string{
	ColorCharacter: "萬",
	ColorDot:       "筒",
	ColorBamboo:    "索",
}

// Label 显示名：字牌查表，数牌为 点数+花色，赤五加 "赤" 前缀
func Label(t Tile) string {
	if !t.IsValid() {
		return t.String()
	}
	if t.IsHonor() {
		return honorNames[t.Rank()-1]
	}
	name := strconv.Itoa(t.Point()+1) + suitGlyphs[t.Color()]
	if t.IsRed() {
		return "赤" + name
	}
	return name
}

// LabelText 简写 -> 显示名，无法识别时原样返回
func LabelText(text string) string {
	tiles := Parse(text)
	if len(tiles) != 1 {
		return text
	}
	return Label(tiles[0])
}
