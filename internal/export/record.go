package export

import (
	"encoding/json"
	"io"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/pksim/internal/analysis"
	"github.com/san-kum/pksim/internal/config"
	"github.com/san-kum/pksim/internal/pk"
	"github.com/san-kum/pksim/internal/sim"
)

// Record is the serialized form of one run. Non-finite summary values are
// written as null.
type Record struct {
	RunID          uuid.UUID            `json:"runId"`
	CreatedAt      time.Time            `json:"createdAt"`
	Inputs         *config.Config       `json:"inputs"`
	Ph             pk.PhSeries          `json:"urinePh"`
	Concentrations pk.Concentrations    `json:"concentrations"`
	Sleep          analysis.SleepFields `json:"sleepAnalysis"`
	Summary        SummaryFields        `json:"pkSummary"`
	Metrics        map[string]float64   `json:"metrics,omitempty"`
}

type SummaryFields struct {
	EliminationRatePerH  *float64 `json:"eliminationRateConstant"`
	HalfLifeH            *float64 `json:"halfLifeH"`
	AccumulationFactor   *float64 `json:"accumulationFactor"`
	TroughSteadyStateMgL *float64 `json:"troughSteadyStateMgL"`
}

func NewRecord(id uuid.UUID, createdAt time.Time, cfg *config.Config, res *sim.Result) Record {
	metrics := make(map[string]float64, len(res.Metrics))
	for k, v := range res.Metrics {
		if finite(v) {
			metrics[k] = v
		}
	}

	return Record{
		RunID:          id,
		CreatedAt:      createdAt,
		Inputs:         cfg,
		Ph:             res.Ph,
		Concentrations: res.Concentrations,
		Sleep:          analysis.Fields(res.Sleep),
		Summary: SummaryFields{
			EliminationRatePerH:  nullable(res.Summary.EliminationRatePerH),
			HalfLifeH:            nullable(res.Summary.HalfLifeH),
			AccumulationFactor:   nullable(res.Summary.AccumulationFactor),
			TroughSteadyStateMgL: nullable(res.Summary.TroughSteadyStateMgL),
		},
		Metrics: metrics,
	}
}

func WriteJSON(w io.Writer, rec Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

func ReadJSON(r io.Reader) (Record, error) {
	var rec Record
	err := json.NewDecoder(r).Decode(&rec)
	return rec, err
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

func nullable(v float64) *float64 {
	if !finite(v) {
		return nil
	}
	return &v
}
