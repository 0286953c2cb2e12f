package mahjong

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 3 张牌的 6 种排列应等概率出现
func Test_Initialize_Permutations(t *testing.T) {
	const rounds = 60000
	d := NewSeededDealer(11)
	tiles := []Tile{TileDong, TileNan, TileXi}
	seen := make(map[string]int)
	for range rounds {
		d.initialize(tiles)
		seen[fmt.Sprint(d.tileWall)]++
	}
	require.Len(t, seen, 6)
	expected := float64(rounds) / 6
	for perm, n := range seen {
		assert.Less(t, math.Abs(float64(n)-expected)/expected, 0.05, perm)
	}
}
