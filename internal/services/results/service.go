package results

import (
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/autoweb/autoweb/pkg/event"
	evmodels "github.com/autoweb/autoweb/pkg/event/models"
	"github.com/autoweb/autoweb/pkg/models"
)

type Stats struct {
	Total       int     `json:"total_results"`
	Successful  int     `json:"successful_results"`
	SuccessRate float64 `json:"success_rate"`
}

// ResultLog is the append-only record of everything the hub has done.
type ResultLog interface {
	Record(res models.Result)
	List() []models.Result
	Stats() Stats
}

type MemoryResultLog struct {
	results  []models.Result
	capacity int
	broker   event.EventBroker
	mtx      sync.RWMutex
	l        *zap.SugaredLogger
}

func NewMemoryResultLog(capacity int, broker event.EventBroker, l *zap.Logger) *MemoryResultLog {
	return &MemoryResultLog{
		capacity: capacity,
		broker:   broker,
		l:        l.Sugar(),
	}
}

func (s *MemoryResultLog) Record(res models.Result) {
	s.mtx.Lock()
	s.results = append(s.results, res)
	if s.capacity > 0 && len(s.results) > s.capacity {
		// keep the most recent records
		trimmed := make([]models.Result, s.capacity)
		copy(trimmed, s.results[len(s.results)-s.capacity:])
		s.results = trimmed
	}
	s.mtx.Unlock()

	s.broker.Publish(evmodels.NewResultRecordedEvent(evmodels.ResultRecorded{Result: res}))
	s.l.Debugw("result recorded",
		zap.String("name", res.Name),
		zap.String("type", string(res.Type)),
		zap.String("status", string(res.Status)),
	)
}

func (s *MemoryResultLog) List() []models.Result {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := make([]models.Result, len(s.results))
	copy(res, s.results)
	return res
}

func (s *MemoryResultLog) Stats() Stats {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	st := Stats{Total: len(s.results)}
	for _, r := range s.results {
		if r.OK() {
			st.Successful++
		}
	}
	if st.Total > 0 {
		st.SuccessRate = math.Round(float64(st.Successful)/float64(st.Total)*1000) / 10
	}
	return st
}
