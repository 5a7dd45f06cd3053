package engine

import (
	"testing"

	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/localization"
	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/types"
)

func weightedQuestion(id string, area string, weightByValue map[string]int) types.Question {
	options := []types.QuestionOption{}
	for value, weight := range weightByValue {
		options = append(options, types.QuestionOption{Value: value, MaturityWeight: weight})
	}
	return types.Question{
		ID:       id,
		Area:     area,
		Type:     types.QUESTION_TYPE_SINGLE_CHOICE,
		Options:  options,
		Required: true,
	}
}

func TestScoreArea(t *testing.T) {
	catalog := testCatalog()

	t.Run("maturity average of weighted answers", func(t *testing.T) {
		questions := []types.Question{
			weightedQuestion("q1", types.AREA_GOVERNANCE, map[string]int{"a": 3}),
			weightedQuestion("q2", types.AREA_GOVERNANCE, map[string]int{"b": 5}),
		}
		responses := map[string]types.Response{
			"q1": {QuestionID: "q1", Value: types.SingleValue("a")},
			"q2": {QuestionID: "q2", Value: types.SingleValue("b")},
		}
		result := ScoreArea(types.AREA_GOVERNANCE, questions, responses, catalog, localization.LANG_EN)
		if result.MaturityScore != 4.0 {
			t.Errorf("expected maturity 4.0, got %v", result.MaturityScore)
		}
	})

	t.Run("maturity zero without weighted answers", func(t *testing.T) {
		questions := []types.Question{
			{ID: "q1", Area: types.AREA_DATA, Type: types.QUESTION_TYPE_FREE_TEXT},
		}
		responses := map[string]types.Response{
			"q1": {QuestionID: "q1", Value: types.SingleValue("some text")},
		}
		result := ScoreArea(types.AREA_DATA, questions, responses, catalog, localization.LANG_EN)
		if result.MaturityScore != 0 {
			t.Errorf("expected maturity 0, got %v", result.MaturityScore)
		}
	})

	t.Run("maturity rounding half up to one decimal", func(t *testing.T) {
		questions := []types.Question{
			weightedQuestion("q1", types.AREA_PRIVACY, map[string]int{"a": 2}),
			weightedQuestion("q2", types.AREA_PRIVACY, map[string]int{"b": 3}),
			weightedQuestion("q3", types.AREA_PRIVACY, map[string]int{"c": 3}),
		}
		responses := map[string]types.Response{
			"q1": {QuestionID: "q1", Value: types.SingleValue("a")},
			"q2": {QuestionID: "q2", Value: types.SingleValue("b")},
			"q3": {QuestionID: "q3", Value: types.SingleValue("c")},
		}
		// 8/3 = 2.666... -> 2.7
		result := ScoreArea(types.AREA_PRIVACY, questions, responses, catalog, localization.LANG_EN)
		if result.MaturityScore != 2.7 {
			t.Errorf("expected maturity 2.7, got %v", result.MaturityScore)
		}
	})

	t.Run("compliance with one of two questions flagged", func(t *testing.T) {
		questions := []types.Question{
			{ID: "q1", Area: types.AREA_SECURITY, Type: types.QUESTION_TYPE_SINGLE_CHOICE, FlagTriggerValues: []string{"no"}},
			{ID: "q2", Area: types.AREA_SECURITY, Type: types.QUESTION_TYPE_SINGLE_CHOICE, FlagTriggerValues: []string{"no"}},
		}
		responses := map[string]types.Response{
			"q1": {QuestionID: "q1", Value: types.SingleValue("no")},
			"q2": {QuestionID: "q2", Value: types.SingleValue("yes")},
		}
		result := ScoreArea(types.AREA_SECURITY, questions, responses, catalog, localization.LANG_EN)
		if result.ComplianceScore != 50 {
			t.Errorf("expected compliance 50, got %d", result.ComplianceScore)
		}
		if result.AnsweredCount != 2 {
			t.Errorf("expected answeredCount 2, got %d", result.AnsweredCount)
		}
		if len(result.Flags) != 1 {
			t.Errorf("expected one flag, got %v", result.Flags)
		}
	})

	t.Run("no answered questions", func(t *testing.T) {
		questions := []types.Question{
			{ID: "q1", Area: types.AREA_PROCUREMENT, Type: types.QUESTION_TYPE_SINGLE_CHOICE, FlagTriggerValues: []string{"no"}},
		}
		result := ScoreArea(types.AREA_PROCUREMENT, questions, map[string]types.Response{}, catalog, localization.LANG_EN)
		if result.ComplianceScore != 0 {
			t.Errorf("expected compliance 0, got %d", result.ComplianceScore)
		}
		if result.AnsweredCount != 0 {
			t.Errorf("expected answeredCount 0, got %d", result.AnsweredCount)
		}
	})

	t.Run("hidden questions excluded from question count", func(t *testing.T) {
		questions := []types.Question{
			weightedQuestion("q1", types.AREA_DATA, map[string]int{"yes": 5}),
			{
				ID: "q2", Area: types.AREA_DATA, Type: types.QUESTION_TYPE_SINGLE_CHOICE, Required: true,
				DependsOn: &types.Dependency{QuestionID: "q1", Values: []string{"yes"}},
			},
		}
		result := ScoreArea(types.AREA_DATA, questions, map[string]types.Response{}, catalog, localization.LANG_EN)
		if result.QuestionCount != 1 {
			t.Errorf("expected questionCount 1, got %d", result.QuestionCount)
		}
	})

	t.Run("stale answer of a now hidden question is ignored", func(t *testing.T) {
		questions := []types.Question{
			{
				ID: "q1", Area: types.AREA_GOVERNANCE, Type: types.QUESTION_TYPE_SINGLE_CHOICE, Required: true,
				Options: []types.QuestionOption{{Value: "yes"}, {Value: "partial"}, {Value: "no"}},
			},
			{
				ID: "q2", Area: types.AREA_GOVERNANCE, Type: types.QUESTION_TYPE_SINGLE_CHOICE, Required: true,
				Options:           []types.QuestionOption{{Value: "yearly"}, {Value: "never"}},
				FlagTriggerValues: []string{"never"},
				DependsOn:         &types.Dependency{QuestionID: "q1", Values: []string{"yes", "partial"}},
			},
		}
		// q2 was answered while visible, then q1 changed to "no" and hid it
		responses := map[string]types.Response{
			"q1": {QuestionID: "q1", Value: types.SingleValue("no")},
			"q2": {QuestionID: "q2", Value: types.SingleValue("never")},
		}
		result := ScoreArea(types.AREA_GOVERNANCE, questions, responses, catalog, localization.LANG_EN)
		if result.QuestionCount != 1 {
			t.Errorf("expected questionCount 1, got %d", result.QuestionCount)
		}
		if result.AnsweredCount != 1 {
			t.Errorf("expected answeredCount 1, got %d", result.AnsweredCount)
		}
		if result.ComplianceScore != 100 {
			t.Errorf("expected compliance 100, got %d", result.ComplianceScore)
		}
		if len(result.Flags) != 0 {
			t.Errorf("expected no flags from the hidden answer, got %v", result.Flags)
		}
	})
}

func TestSummarize(t *testing.T) {
	t.Run("areas without data are excluded from the denominator", func(t *testing.T) {
		areaResults := []types.AreaResult{
			{Area: "a", MaturityScore: 4.0, ComplianceScore: 100, AnsweredCount: 2},
			{Area: "b", MaturityScore: 0, ComplianceScore: 0, AnsweredCount: 0},
			{Area: "c", MaturityScore: 2.0, ComplianceScore: 50, AnsweredCount: 1},
		}
		summary := Summarize(areaResults)
		if summary.OverallMaturity != 3.0 {
			t.Errorf("expected overall maturity 3.0, got %v", summary.OverallMaturity)
		}
		if summary.OverallCompliance != 75 {
			t.Errorf("expected overall compliance 75, got %d", summary.OverallCompliance)
		}
	})

	t.Run("fully flagged area still counts towards compliance", func(t *testing.T) {
		areaResults := []types.AreaResult{
			{Area: "a", ComplianceScore: 100, AnsweredCount: 1},
			{Area: "b", ComplianceScore: 0, AnsweredCount: 2, Flags: []string{"x", "y"}},
		}
		summary := Summarize(areaResults)
		if summary.OverallCompliance != 50 {
			t.Errorf("expected overall compliance 50, got %d", summary.OverallCompliance)
		}
		if summary.TotalFlags != 2 {
			t.Errorf("expected 2 total flags, got %d", summary.TotalFlags)
		}
	})

	t.Run("no data at all", func(t *testing.T) {
		summary := Summarize([]types.AreaResult{{Area: "a"}})
		if summary.OverallMaturity != 0 || summary.OverallCompliance != 0 || summary.TotalFlags != 0 {
			t.Errorf("expected zero summary, got %+v", summary)
		}
	})
}

func TestFlagScenarioOnSecurityQuestion(t *testing.T) {
	catalog := testCatalog()
	questions := []types.Question{
		{
			ID:   "sec_1",
			Area: types.AREA_SECURITY,
			Type: types.QUESTION_TYPE_MULTI_CHOICE,
			Options: []types.QuestionOption{
				{Value: "mfa"}, {Value: "encryption"}, {Value: "none"},
			},
			Required:          true,
			FlagTriggerValues: []string{"none"},
		},
	}

	responses := map[string]types.Response{
		"sec_1": {QuestionID: "sec_1", Value: types.MultiValue("mfa", "encryption")},
	}
	result := ScoreArea(types.AREA_SECURITY, questions, responses, catalog, localization.LANG_EN)
	if len(result.Flags) != 0 {
		t.Fatalf("expected no flags for safe selection, got %v", result.Flags)
	}
	if result.ComplianceScore != 100 {
		t.Errorf("expected compliance 100, got %d", result.ComplianceScore)
	}

	// last write wins, same question answered again
	responses["sec_1"] = types.Response{QuestionID: "sec_1", Value: types.MultiValue("none")}
	result = ScoreArea(types.AREA_SECURITY, questions, responses, catalog, localization.LANG_EN)
	if len(result.Flags) != 1 {
		t.Fatalf("expected exactly one flag, got %v", result.Flags)
	}
	if result.ComplianceScore != 0 {
		t.Errorf("expected compliance 0, got %d", result.ComplianceScore)
	}
	if result.AnsweredCount != 1 {
		t.Errorf("expected answeredCount 1, got %d", result.AnsweredCount)
	}
}
