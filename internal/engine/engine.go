package engine

import (
	"github.com/iwvelando/loan-compare/internal/rates"
	"go.uber.org/zap"
)

// Engine computes loan estimates against an immutable rate table provider.
// An Engine holds no mutable state between calls; concurrent invocations on
// any inputs are safe.
type Engine struct {
	logger *zap.Logger
	rates  *rates.Provider
}

// New creates an Engine backed by the given rate tables.
func New(logger *zap.Logger, provider *rates.Provider) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger, rates: provider}
}

// Rates exposes the reference tables backing this engine.
func (e *Engine) Rates() *rates.Provider {
	return e.rates
}

// dti computes the debt-to-income ratio from total monthly obligations and
// gross income. Zero or negative income yields zero rather than a
// non-representable quotient.
func dti(monthlyDebts, totalHousingPayment, grossMonthlyIncome float64) float64 {
	if grossMonthlyIncome <= 0 {
		return 0
	}
	return (monthlyDebts + totalHousingPayment) / grossMonthlyIncome
}
