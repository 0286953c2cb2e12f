package service

import (
	"github.com/kevin-chtw/tw_nanikiru/mahjong"
	"github.com/kevin-chtw/tw_nanikiru/nanikiru"
)

type discardReq struct {
	Hand []string `json:"hand"`
	Tile string   `json:"tile"`
}

type evaluateReq struct {
	Hand []string `json:"hand"`
}

type dealAck struct {
	Hand   []string `json:"hand"`
	Labels []string `json:"labels"`
}

type candidateView struct {
	Tile        string   `json:"tile"`
	Label       string   `json:"label"`
	Shanten     int      `json:"shanten"`
	Ukeire      int      `json:"ukeire"`
	UkeireTiles []string `json:"ukeire_tiles"`
}

type resultView struct {
	Shanten  int             `json:"shanten"`
	Ukeire   int             `json:"ukeire"`
	Discards []candidateView `json:"discards"`
}

type discardAck struct {
	Correct bool          `json:"correct"`
	Chosen  candidateView `json:"chosen"`
	Best    candidateView `json:"best"`
	Result  resultView    `json:"result"`
}

func newDealAck(hand []string) *dealAck {
	ack := &dealAck{Hand: hand, Labels: make([]string, len(hand))}
	for i, text := range hand {
		ack.Labels[i] = mahjong.LabelText(text)
	}
	return ack
}

func newCandidateView(c nanikiru.DiscardCandidate) candidateView {
	return candidateView{
		Tile:        c.Display,
		Label:       mahjong.LabelText(c.Display),
		Shanten:     c.Shanten,
		Ukeire:      c.Ukeire,
		UkeireTiles: mahjong.TilesText(c.UkeireTiles),
	}
}

func newResultView(res nanikiru.EvaluationResult) *resultView {
	view := &resultView{
		Shanten:  res.Shanten,
		Ukeire:   res.Ukeire,
		Discards: make([]candidateView, len(res.BestDiscards)),
	}
	for i, c := range res.BestDiscards {
		view.Discards[i] = newCandidateView(c)
	}
	return view
}

func newDiscardAck(v nanikiru.Verdict, res nanikiru.EvaluationResult) *discardAck {
	return &discardAck{
		Correct: v.Correct,
		Chosen:  newCandidateView(v.Chosen),
		Best:    newCandidateView(v.Best),
		Result:  *newResultView(res),
	}
}
