package engine

import (
	"fmt"

	"github.com/iwvelando/loan-compare/internal/config"
	"github.com/iwvelando/loan-compare/internal/metrics"
	"github.com/iwvelando/loan-compare/pkg/constants"
	"go.uber.org/zap"
)

// MaxAffordablePrice finds the largest home price whose VA total monthly
// payment stays at or below the target, by binary search over a fixed price
// range. The search relies on the payment being non-decreasing in price,
// which holds because tax and insurance are fixed monthly figures in the
// input snapshot rather than recomputed per candidate price. The result is a
// best-effort narrowing bounded by the iteration cap, never an error.
func (e *Engine) MaxAffordablePrice(targetPayment float64, inputs config.LoanInputs) float64 {
	metrics.SolverRuns.Inc()

	low := constants.MinSearchPrice
	high := constants.MaxSearchPrice
	iterations := 0

	for low < high && iterations < constants.MaxSolverIterations {
		mid := (low + high) / 2
		result := e.CalculateVA(inputs.WithHomePrice(float64(mid)))

		if result.MonthlyPayment.Total < targetPayment {
			low = mid + 1
		} else {
			high = mid
		}
		iterations++
	}

	metrics.SolverIterations.Observe(float64(iterations))

	price := low - 1
	if price < 0 {
		price = 0
	}

	e.logger.Debug(fmt.Sprintf("max affordable price %d for target payment %.2f after %d iterations",
		price, targetPayment, iterations),
		zap.String("op", "engine.MaxAffordablePrice"),
	)

	return float64(price)
}
