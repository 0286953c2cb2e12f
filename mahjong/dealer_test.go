package mahjong_test

import (
	"bytes"
	"math"
	"slices"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevin-chtw/tw_nanikiru/mahjong"
)

func kindCounts(tiles []mahjong.Tile) map[mahjong.Tile]int {
	counts := make(map[mahjong.Tile]int)
	for _, t := range tiles {
		counts[mahjong.NormalizeRed(t)]++
	}
	return counts
}

func Test_Generate_Legality(t *testing.T) {
	d := mahjong.NewSeededDealer(42)
	for _, size := range []int{1, 13, 14, 17, 136} {
		for range 50 {
			tiles, err := d.Generate(size)
			require.NoError(t, err)
			require.Len(t, tiles, size)
			assert.True(t, slices.IsSorted(tiles))
			for tile, n := range kindCounts(tiles) {
				assert.True(t, tile.IsValid())
				assert.LessOrEqual(t, n, mahjong.SameTileCount, tile.String())
			}
		}
	}
}

func Test_Generate_FullWall(t *testing.T) {
	tiles, err := mahjong.NewRandomDealer(mahjong.WithRedFives()).Generate(mahjong.TileCountTotal)
	require.NoError(t, err)
	counts := kindCounts(tiles)
	assert.Len(t, counts, mahjong.KindCount)
	for _, n := range counts {
		assert.Equal(t, mahjong.SameTileCount, n)
	}
	reds := 0
	for _, tile := range tiles {
		if tile.IsRed() {
			reds++
		}
	}
	assert.Equal(t, 3, reds)
}

func Test_Generate_Size(t *testing.T) {
	d := mahjong.NewSeededDealer(1)
	for _, size := range []int{0, -1, 137} {
		_, err := d.Generate(size)
		assert.ErrorIs(t, err, mahjong.ErrDrawSize)
	}
}

func Test_Generate_Reproducible(t *testing.T) {
	a, err := mahjong.NewSeededDealer(7).Generate(14)
	require.NoError(t, err)
	b, err := mahjong.NewSeededDealer(7).Generate(14)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// 每种牌出现的频率应接近 4/136
func Test_Generate_Uniform(t *testing.T) {
	const rounds = 3000
	d := mahjong.NewSeededDealer(20240601)
	freq := make(map[mahjong.Tile]int)
	for range rounds {
		tiles, err := d.Generate(14)
		require.NoError(t, err)
		for _, tile := range tiles {
			freq[tile]++
		}
	}
	expected := float64(rounds*14) * mahjong.SameTileCount / mahjong.TileCountTotal
	require.Len(t, freq, mahjong.KindCount)
	for tile, n := range freq {
		assert.Less(t, math.Abs(float64(n)-expected)/expected, 0.15, tile.String())
	}
}

func Test_Fill(t *testing.T) {
	d := mahjong.NewSeededDealer(3)
	preset := mahjong.Parse("1111m0p")
	tiles, err := d.Fill(preset, 14)
	require.NoError(t, err)
	require.Len(t, tiles, 14)
	assert.True(t, slices.IsSorted(tiles))
	counts := kindCounts(tiles)
	assert.Equal(t, 4, counts[mahjong.Parse("1m")[0]])
	assert.GreaterOrEqual(t, counts[mahjong.Parse("5p")[0]], 1)
	assert.Contains(t, tiles, mahjong.TileRedPin)

	_, err = d.Fill(mahjong.Parse("11111m"), 14)
	assert.ErrorIs(t, err, mahjong.ErrTileOverflow)

	_, err = d.Fill(mahjong.Parse("123456789m123456p"), 14)
	assert.ErrorIs(t, err, mahjong.ErrDrawSize)
}

func Test_Manual(t *testing.T) {
	vp := viper.New()
	vp.SetConfigType("yaml")
	require.NoError(t, vp.ReadConfig(bytes.NewBufferString(`
enable: true
cards:
  - "123456789m"
  - "19m19p19s1234567z"
`)))
	m, err := mahjong.NewManual(vp)
	require.NoError(t, err)
	require.True(t, m.Enabled())
	assert.Equal(t, 2, m.Count())

	d := mahjong.NewSeededDealer(9)
	first, err := m.Load(d, 14)
	require.NoError(t, err)
	assert.Len(t, first, 14)
	assert.Subset(t, first, mahjong.Parse("123456789m"))

	second, err := m.Load(d, 14)
	require.NoError(t, err)
	assert.Subset(t, second, mahjong.Parse("19m19p19s1234567z"))

	var none *mahjong.Manual
	assert.False(t, none.Enabled())
	_, err = none.Load(d, 14)
	assert.Error(t, err)
}

func Test_Manual_BadCards(t *testing.T) {
	vp := viper.New()
	vp.Set("cards", []string{"12x"})
	_, err := mahjong.NewManual(vp)
	assert.ErrorIs(t, err, mahjong.ErrInvalidTile)

	m, err := mahjong.NewManual(nil)
	assert.NoError(t, err)
	assert.Nil(t, m)
}
