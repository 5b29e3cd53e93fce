package coverage

import (
	"log/slog"

	"github.com/KasumiMercury/primind-group-matching/internal/config"
)

func NewEvaluator(strategy config.EvaluationStrategy) Evaluator {
	switch strategy {
	case config.EvaluationStrategyFull:
		slog.Info("using full coverage evaluation strategy")
		return NewFullEvaluator()

	case config.EvaluationStrategyShortCircuit:
		fallthrough
	default:
		slog.Info("using short-circuit coverage evaluation strategy")
		return NewShortCircuitEvaluator()
	}
}
