package mahjong_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevin-chtw/tw_nanikiru/mahjong"
	"github.com/kevin-chtw/tw_nanikiru/ting"
)

func Test_Parse(t *testing.T) {
	testCases := []struct {
		text string
		want []string
	}{
		{"123m", []string{"1m", "2m", "3m"}},
		{"123m456p789s11z", []string{"1m", "2m", "3m", "4p", "5p", "6p", "7s", "8s", "9s", "1z", "1z"}},
		{"406p", []string{"4p", "0p", "6p"}},
		{"1m 2m,3m", []string{"1m", "2m", "3m"}},
		{"1289z", []string{"1z", "2z"}},
		{"123", []string{}},
		{"m", []string{}},
		{"", []string{}},
		{"5x5m", []string{"5m", "5m"}},
	}
	for _, tc := range testCases {
		t.Run(tc.text, func(t *testing.T) {
			assert.Equal(t, tc.want, mahjong.TilesText(mahjong.Parse(tc.text)))
		})
	}
}

func Test_ParseStrict(t *testing.T) {
	tiles, err := mahjong.ParseStrict("123m 0p, 77z")
	require.NoError(t, err)
	assert.Equal(t, []string{"1m", "2m", "3m", "0p", "7z", "7z"}, mahjong.TilesText(tiles))

	for _, text := range []string{"8z", "12", "m", "1x", "0z"} {
		_, err := mahjong.ParseStrict(text)
		assert.ErrorIs(t, err, mahjong.ErrInvalidTile, text)
	}
}

func Test_RoundTrip(t *testing.T) {
	texts := []string{
		"123456789m1234p",
		"19m19p19s1234567z",
		"055m0p0s",
		"1122m3344p5566s77z",
	}
	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			tiles := mahjong.Parse(text)
			again := mahjong.Parse(mahjong.JoinText(tiles))
			slices.Sort(tiles)
			slices.Sort(again)
			assert.Equal(t, tiles, again)
		})
	}
}

func Test_NormalizeRed(t *testing.T) {
	for _, tile := range mahjong.Parse("0m0p0s5m5p5s1m7z") {
		once := mahjong.NormalizeRed(tile)
		assert.Equal(t, once, mahjong.NormalizeRed(once), tile.String())
		assert.False(t, once.IsRed())
		if !tile.IsRed() {
			assert.Equal(t, tile, once)
		}
	}
	assert.Equal(t, mahjong.Parse("5m")[0], mahjong.NormalizeRed(mahjong.TileRedMan))
	assert.Equal(t, 0, mahjong.TileRedPin.Rank())
	assert.Equal(t, "0s", mahjong.TileRedSou.String())
}

func Test_TileValid(t *testing.T) {
	assert.True(t, mahjong.TileZhong.IsValid())
	assert.True(t, mahjong.TileRedMan.IsValid())
	assert.False(t, mahjong.TileNull.IsValid())
	assert.False(t, mahjong.TileInf.IsValid())
	assert.False(t, mahjong.MakeSpecialTile(mahjong.ColorWind, 0, mahjong.FlagRed).IsValid())
	assert.False(t, mahjong.MakeTile(mahjong.ColorDragon, 3).IsValid())
	assert.True(t, mahjong.TileDong.IsHonor())
	assert.False(t, mahjong.TileRedMan.IsHonor())
}

func Test_SortTiles(t *testing.T) {
	tiles := mahjong.Parse("7z1s9p1m0m5m2z")
	mahjong.SortTiles(tiles)
	assert.Equal(t, []string{"1m", "5m", "0m", "9p", "1s", "2z", "7z"}, mahjong.TilesText(tiles))
}

func Test_AllKinds(t *testing.T) {
	kinds := mahjong.AllKinds()
	require.Len(t, kinds, mahjong.KindCount)
	for i, k := range kinds {
		assert.Equal(t, i, k.Kind())
		assert.Equal(t, k, mahjong.FromKind(ting.Kind(i)))
	}
}

func Test_ToSolverHand(t *testing.T) {
	hand, err := mahjong.ToSolverHand(mahjong.Parse("31m0p5p9s75z"))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, hand[ting.SuitMan])
	assert.Equal(t, []int{5, 5}, hand[ting.SuitPin])
	assert.Equal(t, []int{9}, hand[ting.SuitSou])
	assert.Equal(t, []int{7, 5}, hand[ting.SuitZi])
	assert.Equal(t, 7, hand.Len())

	_, err = mahjong.ToSolverHand([]mahjong.Tile{mahjong.TileNull})
	assert.ErrorIs(t, err, mahjong.ErrInvalidTile)
}

func Test_Label(t *testing.T) {
	testCases := map[string]string{
		"1z": "東",
		"4z": "北",
		"5z": "白",
		"6z": "發",
		"7z": "中",
		"1m": "1萬",
		"9p": "9筒",
		"3s": "3索",
		"0m": "赤5萬",
	}
	for text, want := range testCases {
		assert.Equal(t, want, mahjong.LabelText(text), text)
	}
	assert.Equal(t, "8z", mahjong.LabelText("8z"))
	assert.Equal(t, mahjong.TileNull.String(), mahjong.Label(mahjong.TileNull))
	assert.Equal(t, "1萬, 中", mahjong.TilesName(mahjong.Parse("1m7z")))
}
