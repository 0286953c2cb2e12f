package nanikiru

import (
	"context"

	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"golang.org/x/sync/errgroup"

	"github.com/kevin-chtw/tw_nanikiru/mahjong"
)

// Round 一局练习：发出的手牌与计算结果。局与局之间不保留任何状态。
type Round struct {
	Hand   []string
	Result EvaluationResult
}

// Discard 判定玩家打出的牌
func (r *Round) Discard(tile string) (Verdict, error) {
	return Judge(r.Result, tile)
}

// Trainer 发牌 + 计算
type Trainer struct {
	dealer    *mahjong.Dealer
	manual    *mahjong.Manual
	evaluator *Evaluator
	handCount int
	workers   int
}

func NewTrainer(dealer *mahjong.Dealer, manual *mahjong.Manual, evaluator *Evaluator, handCount int) *Trainer {
	return &Trainer{
		dealer:    dealer,
		manual:    manual,
		evaluator: evaluator,
		handCount: handCount,
	}
}

// New 按配置组装 Trainer
func New(cfg *Config) (*Trainer, error) {
	rs, err := cfg.NewRuleSet()
	if err != nil {
		return nil, err
	}
	t := NewTrainer(cfg.NewDealer(), cfg.Manual, NewEvaluator(rs), cfg.HandSize)
	t.workers = cfg.Workers
	return t, nil
}

func (t *Trainer) Evaluator() *Evaluator {
	return t.evaluator
}

// Deal 发一手牌，启用预设牌型时按题库出题
func (t *Trainer) Deal() ([]string, error) {
	var tiles []mahjong.Tile
	var err error
	if t.manual.Enabled() {
		tiles, err = t.manual.Load(t.dealer, t.handCount)
	} else {
		tiles, err = t.dealer.Generate(t.handCount)
	}
	if err != nil {
		return nil, err
	}
	return mahjong.TilesText(tiles), nil
}

// NewRound 发牌并计算
func (t *Trainer) NewRound() (*Round, error) {
	hand, err := t.Deal()
	if err != nil {
		return nil, err
	}
	res := t.evaluator.Evaluate(hand)
	logger.Log.Debugf("new round %v shanten %d ukeire %d", hand, res.Shanten, res.Ukeire)
	return &Round{Hand: hand, Result: res}, nil
}

// NewRounds 一次准备 n 局，计算并行进行
func (t *Trainer) NewRounds(ctx context.Context, n int) ([]*Round, error) {
	hands := make([][]string, n)
	for i := range hands {
		hand, err := t.Deal()
		if err != nil {
			return nil, err
		}
		hands[i] = hand
	}
	results, err := t.evaluator.EvaluateBatch(ctx, hands, t.workers)
	if err != nil {
		return nil, err
	}
	rounds := make([]*Round, n)
	for i := range rounds {
		rounds[i] = &Round{Hand: hands[i], Result: results[i]}
	}
	return rounds, nil
}

// EvaluateBatch 并行计算多手牌，workers <= 0 时不限并发
func (e *Evaluator) EvaluateBatch(ctx context.Context, hands [][]string, workers int) ([]EvaluationResult, error) {
	results := make([]EvaluationResult, len(hands))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, hand := range hands {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = e.Evaluate(hand)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
