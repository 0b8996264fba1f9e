package services

import (
	"fmt"

	"finance-dashboard/internal/models"
)

// ChartRegistry maps chart types to their strategies. It is built once at startup and read-only afterwards.
type ChartRegistry struct {
	strategies map[models.ChartType]ChartStrategy
	order      []models.ChartType
}

func NewChartRegistry(strategies ...ChartStrategy) (*ChartRegistry, error) {
	r := &ChartRegistry{strategies: make(map[models.ChartType]ChartStrategy, len(strategies))}
	for _, s := range strategies {
		if _, exists := r.strategies[s.Type()]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateChartStrategy, s.Type())
		}
		r.strategies[s.Type()] = s
		r.order = append(r.order, s.Type())
	}
	return r, nil
}

// Get returns the strategy registered for chartType
func (r *ChartRegistry) Get(chartType models.ChartType) (ChartStrategy, error) {
	s, ok := r.strategies[chartType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrChartTypeNotFound, chartType)
	}
	return s, nil
}

// Resolve picks the strategy for req and confirms it accepts the request
func (r *ChartRegistry) Resolve(req *models.ChartRequest) (ChartStrategy, error) {
	s, err := r.Get(req.ChartType)
	if err != nil {
		return nil, err
	}
	if !s.CanHandle(req) {
		return nil, fmt.Errorf("%w: %s", ErrChartTypeNotFound, req.ChartType)
	}
	return s, nil
}

// Types returns the registered chart types in registration order
func (r *ChartRegistry) Types() []models.ChartType {
	out := make([]models.ChartType, len(r.order))
	copy(out, r.order)
	return out
}
