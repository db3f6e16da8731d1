package engine

import (
	"github.com/iwvelando/loan-compare/internal/config"
	"github.com/iwvelando/loan-compare/internal/metrics"
)

// Compare runs all three program calculators over one input snapshot and
// returns the joint result. Each calculator independently recomputes the down
// payment and LTV from the raw inputs, keeping the three self-contained.
func (e *Engine) Compare(inputs config.LoanInputs) ComparisonResult {
	metrics.ComparisonsComputed.Inc()

	return ComparisonResult{
		VA:           e.CalculateVA(inputs),
		Conventional: e.CalculateConventional(inputs),
		FHA:          e.CalculateFHA(inputs),
	}
}
