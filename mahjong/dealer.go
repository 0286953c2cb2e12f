package mahjong

import (
	"fmt"
	"math/rand/v2"
	"sync"
)

type DealerOption func(*Dealer)

// WithRedFives 每种数牌的五里放一张赤五
func WithRedFives() DealerOption {
	return func(d *Dealer) {
		d.redFives = true
	}
}

// Dealer 麻将发牌器，可并发使用
type Dealer struct {
	mu       sync.Mutex
	rng      *rand.Rand
	redFives bool
	tileWall []Tile
}

// NewDealer 创建新的发牌器
func NewDealer(rng *rand.Rand, opts ...DealerOption) *Dealer {
	d := &Dealer{
		rng:      rng,
		tileWall: make([]Tile, 0, TileCountTotal),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewSeededDealer 固定种子，发牌序列可复现
func NewSeededDealer(seed uint64, opts ...DealerOption) *Dealer {
	return NewDealer(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), opts...)
}

// NewRandomDealer 使用运行时随机源
func NewRandomDealer(opts ...DealerOption) *Dealer {
	return NewDealer(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), opts...)
}

// Generate 洗牌后取前 size 张，按理牌顺序返回
func (d *Dealer) Generate(size int) ([]Tile, error) {
	if size < 1 || size > TileCountTotal {
		return nil, fmt.Errorf("%w: %d (1..%d)", ErrDrawSize, size, TileCountTotal)
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	d.initialize(d.allTiles())
	return d.deal(size), nil
}

// Fill 以 preset 为底，从剩余牌墙补足 size 张
func (d *Dealer) Fill(preset []Tile, size int) ([]Tile, error) {
	if size < 1 || size > TileCountTotal || len(preset) > size {
		return nil, fmt.Errorf("%w: %d with %d preset tiles", ErrDrawSize, size, len(preset))
	}
	tmp := make(map[Tile]int, KindCount)
	for _, t := range d.allTiles() {
		tmp[t]++
	}
	for _, t := range preset {
		if !t.IsValid() {
			return nil, fmt.Errorf("%w: %d", ErrInvalidTile, t)
		}
		key := t
		if tmp[key] == 0 {
			key = d.substitute(t)
		}
		tmp[key]--
		if tmp[key] < 0 {
			return nil, fmt.Errorf("%w: %s", ErrTileOverflow, t)
		}
	}

	var rests []Tile
	for _, t := range d.allTiles() {
		if tmp[t] > 0 {
			rests = append(rests, makeTiles(t, tmp[t])...)
			tmp[t] = 0
		}
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.initialize(rests)
	out := append(append([]Tile(nil), preset...), d.deal(size-len(preset))...)
	SortTiles(out)
	return out, nil
}

// substitute 牌墙里没有 t 时可以顶替它的同种牌（赤五与普通五互相顶替）
func (d *Dealer) substitute(t Tile) Tile {
	if t.IsRed() {
		return NormalizeRed(t)
	}
	if d.redFives && t.IsSuit() && t.Point() == 4 {
		return MakeSpecialTile(t.Color(), 4, FlagRed)
	}
	return t
}

// allTiles 完整的 136 张牌，理牌顺序
func (d *Dealer) allTiles() []Tile {
	tiles := make([]Tile, 0, TileCountTotal)
	for _, kind := range AllKinds() {
		count := SameTileCount
		if d.redFives && kind.IsSuit() && kind.Point() == 4 {
			tiles = append(tiles, MakeSpecialTile(kind.Color(), 4, FlagRed))
			count--
		}
		tiles = append(tiles, makeTiles(kind, count)...)
	}
	return tiles
}

// initialize 边填充边洗牌（inside-out Fisher-Yates），每种排列等概率
func (d *Dealer) initialize(tiles []Tile) {
	d.tileWall = d.tileWall[:0]
	for i, tile := range tiles {
		pos := d.rng.IntN(i + 1)
		if pos == i {
			d.tileWall = append(d.tileWall, tile)
			continue
		}
		d.tileWall = append(d.tileWall, d.tileWall[pos])
		d.tileWall[pos] = tile
	}
}

func (d *Dealer) deal(count int) []Tile {
	tiles := make([]Tile, count)
	copy(tiles, d.tileWall[:count])
	d.tileWall = d.tileWall[count:]
	SortTiles(tiles)
	return tiles
}

// GetRestCount 剩余牌数
func (d *Dealer) GetRestCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.tileWall)
}
