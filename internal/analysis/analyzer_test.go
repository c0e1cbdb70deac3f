package analysis_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/hospital_surge_system/internal/analysis"
	"github.com/shenikar/hospital_surge_system/internal/analysis/mocks"
	"github.com/shenikar/hospital_surge_system/internal/config"
	"github.com/shenikar/hospital_surge_system/internal/surge"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func criticalSnapshot() surge.Snapshot {
	return surge.Snapshot{
		HospitalID:          "HOSP-A",
		BedsTotal:           100,
		BedsFree:            8,
		DoctorsOnShift:      3,
		NursesOnShift:       5,
		OxygenCylinders:     5,
		Ventilators:         1,
		IncomingEmergencies: 6,
		AQI:                 250,
		Festival:            "Diwali",
		NewsSummary:         "Highway mass casualty accident reported",
	}
}

func TestNew_Strategies(t *testing.T) {
	logger := newTestLogger()

	rules, err := analysis.New(&config.Config{AnalysisStrategy: config.StrategyRules}, nil, logger)
	require.NoError(t, err)
	assert.IsType(t, analysis.RuleAnalyzer{}, rules)

	agentic, err := analysis.New(&config.Config{AnalysisStrategy: config.StrategyAgentic, AdvisorTimeout: time.Second}, nil, logger)
	require.NoError(t, err)
	assert.IsType(t, &analysis.AgenticAnalyzer{}, agentic)

	_, err = analysis.New(&config.Config{AnalysisStrategy: "oracle"}, nil, logger)
	assert.Error(t, err)
}

func TestRuleAnalyzer_MatchesEngine(t *testing.T) {
	snap := criticalSnapshot()

	report, err := analysis.RuleAnalyzer{}.Analyze(context.Background(), snap, nil)

	require.NoError(t, err)
	assert.Equal(t, analysis.SourceRules, report.Source)
	assert.Equal(t, surge.FullAnalysis(snap, nil), report.Result)
}

func TestAgenticAnalyzer_UsesValidAdvice(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	advisor := mocks.NewMockAdvisor(ctrl)
	snap := criticalSnapshot()
	advice := surge.Result{
		Risk:                          surge.TierHigh,
		PredictedAdditionalPatients6h: 30,
		AlertMessage:                  "advisor alert",
		Confidence:                    0.7,
	}

	// Ожидания
	advisor.EXPECT().
		Advise(gomock.Any(), snap).
		Return(advice, nil).
		Times(1)

	// Действие
	report, err := analysis.NewAgenticAnalyzer(advisor, time.Second, newTestLogger()).Analyze(context.Background(), snap, nil)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, analysis.SourceAgentic, report.Source)
	assert.Equal(t, advice, report.Result)
}

func TestAgenticAnalyzer_FallsBackToRules(t *testing.T) {
	snap := criticalSnapshot()
	expected := surge.FullAnalysis(snap, nil)

	testCases := []struct {
		name   string
		advice surge.Result
		err    error
	}{
		{name: "advisor error", err: errors.New("upstream timeout")},
		{name: "unknown risk", advice: surge.Result{Risk: "Extreme", Confidence: 0.5}},
		{name: "confidence out of range", advice: surge.Result{Risk: surge.TierLow, Confidence: 1.5}},
		{name: "negative surge", advice: surge.Result{Risk: surge.TierLow, Confidence: 0.5, PredictedAdditionalPatients6h: -1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			advisor := mocks.NewMockAdvisor(ctrl)
			advisor.EXPECT().Advise(gomock.Any(), snap).Return(tc.advice, tc.err).Times(1)

			report, err := analysis.NewAgenticAnalyzer(advisor, time.Second, newTestLogger()).Analyze(context.Background(), snap, nil)

			require.NoError(t, err)
			assert.Equal(t, analysis.SourceRulesFallback, report.Source)
			assert.Equal(t, expected, report.Result)
		})
	}
}

func TestAgenticAnalyzer_AdvisorGetsDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	advisor := mocks.NewMockAdvisor(ctrl)

	advisor.EXPECT().
		Advise(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ surge.Snapshot) (surge.Result, error) {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			<-ctx.Done()
			return surge.Result{}, ctx.Err()
		})

	report, err := analysis.NewAgenticAnalyzer(advisor, 10*time.Millisecond, newTestLogger()).
		Analyze(context.Background(), criticalSnapshot(), nil)

	require.NoError(t, err)
	assert.Equal(t, analysis.SourceRulesFallback, report.Source)
}

func TestAgenticAnalyzer_NilAdvisorIsUnconfigured(t *testing.T) {
	prior := surge.QuickCheck(criticalSnapshot())

	report, err := analysis.NewAgenticAnalyzer(nil, time.Second, newTestLogger()).
		Analyze(context.Background(), criticalSnapshot(), &prior)

	require.NoError(t, err)
	assert.Equal(t, analysis.SourceRulesFallback, report.Source)
	assert.Contains(t, report.Result.Reasoning, "Escalated from quick check")
}

func TestUnconfiguredAdvisor(t *testing.T) {
	_, err := analysis.UnconfiguredAdvisor{}.Advise(context.Background(), criticalSnapshot())
	assert.ErrorIs(t, err, analysis.ErrAdvisorUnavailable)
}
