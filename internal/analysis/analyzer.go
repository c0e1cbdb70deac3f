// Package analysis выбирает стратегию анализа снимков: только правила или внешний советник с откатом на правила.
package analysis

//go:generate mockgen -source=analyzer.go -destination=mocks/analyzer_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shenikar/hospital_surge_system/internal/config"
	"github.com/shenikar/hospital_surge_system/internal/surge"
	"github.com/sirupsen/logrus"
)

// Источники результата
const (
	SourceRules         = "rules"
	SourceAgentic       = "agentic"
	SourceRulesFallback = "rules-fallback"
)

// ErrAdvisorUnavailable возвращается советником, когда внешний сервис не настроен
var ErrAdvisorUnavailable = errors.New("external advisor not configured")

// Report - результат анализа с указанием, какая стратегия его получила
type Report struct {
	Result surge.Result
	Source string
}

// Analyzer определяет контракт стратегии анализа
type Analyzer interface {
	Analyze(ctx context.Context, snapshot surge.Snapshot, prior *surge.QuickCheckResult) (*Report, error)
}

// Advisor - внешний (LLM) советник
type Advisor interface {
	Advise(ctx context.Context, snapshot surge.Snapshot) (surge.Result, error)
}

// New создает анализатор по стратегии из конфигурации
func New(cfg *config.Config, advisor Advisor, logger *logrus.Logger) (Analyzer, error) {
	switch cfg.AnalysisStrategy {
	case config.StrategyRules:
		return RuleAnalyzer{}, nil
	case config.StrategyAgentic:
		return NewAgenticAnalyzer(advisor, cfg.AdvisorTimeout, logger), nil
	default:
		return nil, fmt.Errorf("unknown analysis strategy %q", cfg.AnalysisStrategy)
	}
}

// RuleAnalyzer вызывает движок напрямую
type RuleAnalyzer struct{}

func (RuleAnalyzer) Analyze(_ context.Context, snapshot surge.Snapshot, prior *surge.QuickCheckResult) (*Report, error) {
	return &Report{Result: surge.FullAnalysis(snapshot, prior), Source: SourceRules}, nil
}

// AgenticAnalyzer сначала обращается к советнику и при любой ошибке откатывается на правила
type AgenticAnalyzer struct {
	advisor  Advisor
	timeout  time.Duration
	fallback Analyzer
	logger   *logrus.Logger
}

func NewAgenticAnalyzer(advisor Advisor, timeout time.Duration, logger *logrus.Logger) *AgenticAnalyzer {
	if advisor == nil {
		advisor = UnconfiguredAdvisor{}
	}
	return &AgenticAnalyzer{
		advisor:  advisor,
		timeout:  timeout,
		fallback: RuleAnalyzer{},
		logger:   logger,
	}
}

func (a *AgenticAnalyzer) Analyze(ctx context.Context, snapshot surge.Snapshot, prior *surge.QuickCheckResult) (*Report, error) {
	log := a.logger.WithFields(logrus.Fields{
		"analyzer":    "agentic",
		"hospital_id": snapshot.HospitalID,
	})

	adviseCtx := ctx
	if a.timeout > 0 {
		var cancel context.CancelFunc
		adviseCtx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	result, err := a.advisor.Advise(adviseCtx, snapshot)
	if err == nil {
		if verr := checkAdvice(result); verr != nil {
			err = verr
		}
	}
	if err != nil {
		log.WithError(err).Info("Advisor call failed, using rule-based fallback")
		report, ferr := a.fallback.Analyze(ctx, snapshot, prior)
		if ferr != nil {
			return nil, fmt.Errorf("rule-based fallback failed after advisor error %v: %w", err, ferr)
		}
		report.Source = SourceRulesFallback
		return report, nil
	}

	return &Report{Result: result, Source: SourceAgentic}, nil
}

// checkAdvice отбрасывает ответы советника, нарушающие контракт результата
func checkAdvice(res surge.Result) error {
	switch res.Risk {
	case surge.TierLow, surge.TierMedium, surge.TierHigh:
	default:
		return fmt.Errorf("advisor returned unknown risk %q", res.Risk)
	}
	if res.Confidence < 0 || res.Confidence > 1 {
		return fmt.Errorf("advisor returned confidence %v outside [0,1]", res.Confidence)
	}
	if res.PredictedAdditionalPatients6h < 0 {
		return fmt.Errorf("advisor returned negative surge %d", res.PredictedAdditionalPatients6h)
	}
	return nil
}

// UnconfiguredAdvisor - заглушка внешнего советника, всегда возвращает ErrAdvisorUnavailable
type UnconfiguredAdvisor struct{}

func (UnconfiguredAdvisor) Advise(context.Context, surge.Snapshot) (surge.Result, error) {
	return surge.Result{}, ErrAdvisorUnavailable
}
