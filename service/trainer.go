package service

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	pitaya "github.com/topfreegames/pitaya/v3/pkg"
	"github.com/topfreegames/pitaya/v3/pkg/component"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/kevin-chtw/tw_nanikiru/nanikiru"
	"github.com/kevin-chtw/tw_nanikiru/utils"
)

var errPanic = errors.New("internal error")

// Trainer 何切练习服务，路由为 trainer.deal / trainer.discard / trainer.evaluate
type Trainer struct {
	component.Base
	trainer *nanikiru.Trainer
}

func NewTrainer(trainer *nanikiru.Trainer) *Trainer {
	return &Trainer{trainer: trainer}
}

// Register 注册到 pitaya
func Register(app pitaya.Pitaya, trainer *nanikiru.Trainer) {
	app.Register(NewTrainer(trainer),
		component.WithName("trainer"),
		component.WithNameFunc(strings.ToLower),
	)
}

// Deal 发一手新牌，不返回答案
func (s *Trainer) Deal(ctx context.Context, _ *emptypb.Empty) (ack *structpb.Struct, err error) {
	defer recoverHandler(&err)

	hand, err := s.trainer.Deal()
	if err != nil {
		logger.Log.Errorf("deal failed: %v", err)
		return nil, err
	}
	return utils.ToStruct(newDealAck(hand))
}

// Discard 判定 hand 中打出 tile 是否为最优打法
func (s *Trainer) Discard(ctx context.Context, req *structpb.Struct) (ack *structpb.Struct, err error) {
	defer recoverHandler(&err)

	in := &discardReq{}
	if err := utils.FromStruct(req, in); err != nil {
		return nil, err
	}
	round := &nanikiru.Round{Hand: in.Hand, Result: s.trainer.Evaluator().Evaluate(in.Hand)}
	verdict, err := round.Discard(in.Tile)
	if err != nil {
		return nil, fmt.Errorf("discard %s from %v: %w", in.Tile, in.Hand, err)
	}
	logger.Log.Infof("discard %s from %v correct %t", in.Tile, in.Hand, verdict.Correct)
	return utils.ToStruct(newDiscardAck(verdict, round.Result))
}

// Evaluate 直接给出一手牌的全部打法
func (s *Trainer) Evaluate(ctx context.Context, req *structpb.Struct) (ack *structpb.Struct, err error) {
	defer recoverHandler(&err)

	in := &evaluateReq{}
	if err := utils.FromStruct(req, in); err != nil {
		return nil, err
	}
	return utils.ToStruct(newResultView(s.trainer.Evaluator().Evaluate(in.Hand)))
}

func recoverHandler(err *error) {
	if r := recover(); r != nil {
		logger.Log.Errorf("panic recovered %s\n %s", r, string(debug.Stack()))
		*err = errPanic
	}
}
