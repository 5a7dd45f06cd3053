package assessment

import (
	"context"
	"log/slog"
	"time"

	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/engine"
	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/types"
	"github.com/rcsa-framework/rcsa-backend/pkg/cache"
)

// SubmitResponse validates and stores the answer to one question. A
// repeated submission for the same question overwrites the previous
// value.
func SubmitResponse(instanceID string, assessmentID string, questionID string, value types.ResponseValue) (types.Response, error) {
	if _, err := assessmentDBService.GetAssessmentByID(instanceID, assessmentID); err != nil {
		return types.Response{}, err
	}

	question, ok := questionByID(questionID)
	if !ok {
		return types.Response{}, ErrUnknownQuestion
	}

	responses, err := assessmentDBService.GetResponseMap(instanceID, assessmentID)
	if err != nil {
		return types.Response{}, err
	}
	if !engine.ShouldShow(question, responses) {
		return types.Response{}, ErrQuestionNotVisible
	}

	if err := validateResponseValue(question, value); err != nil {
		return types.Response{}, err
	}

	response := types.Response{
		AssessmentID: assessmentID,
		QuestionID:   questionID,
		Value:        value,
	}
	saved, err := assessmentDBService.SaveResponse(instanceID, response)
	if err != nil {
		slog.Error("Error saving response", slog.String("instanceID", instanceID), slog.String("assessmentID", assessmentID), slog.String("questionID", questionID), slog.String("error", err.Error()))
		return types.Response{}, err
	}

	invalidateResults(instanceID, assessmentID)

	responses[questionID] = saved
	advanceAssignmentsForQuestion(instanceID, assessmentID, questionID, responses)

	return saved, nil
}

func validateResponseValue(question types.Question, value types.ResponseValue) error {
	if !value.MatchesCardinality(question.Type) {
		return ErrInvalidResponseValue
	}
	if len(question.Options) == 0 {
		return nil
	}

	switch value.Kind {
	case types.RESPONSE_VALUE_KIND_SINGLE:
		if _, ok := question.OptionByValue(value.Selected); !ok {
			return ErrUnknownOption
		}
	case types.RESPONSE_VALUE_KIND_MULTI:
		for _, v := range value.Selection {
			if _, ok := question.OptionByValue(v); !ok {
				return ErrUnknownOption
			}
		}
	}
	return nil
}

func GetResponses(instanceID string, assessmentID string) ([]types.Response, error) {
	return assessmentDBService.GetResponses(instanceID, assessmentID)
}

// RemoveResponse deletes the stored answer for one question.
func RemoveResponse(instanceID string, assessmentID string, questionID string) error {
	if err := assessmentDBService.DeleteResponse(instanceID, assessmentID, questionID); err != nil {
		return err
	}
	invalidateResults(instanceID, assessmentID)
	return nil
}

// AssessmentResults bundles the per-area scores with the roll-up summary.
type AssessmentResults struct {
	AreaResults []types.AreaResult   `json:"areaResults"`
	Summary     types.OverallSummary `json:"summary"`
	ComputedAt  int64                `json:"computedAt"`
}

// GetResults computes the scoring of the assessment, serving from the
// results cache when a fresh entry exists.
func GetResults(instanceID string, assessmentID string) (AssessmentResults, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cached, err := resultsCache.Get(ctx, instanceID, assessmentID)
	if err != nil {
		slog.Warn("results cache read failed", slog.String("assessmentID", assessmentID), slog.String("error", err.Error()))
	}
	if cached != nil {
		return AssessmentResults{
			AreaResults: cached.AreaResults,
			Summary:     cached.Summary,
			ComputedAt:  cached.ComputedAt,
		}, nil
	}

	assessment, err := assessmentDBService.GetAssessmentByID(instanceID, assessmentID)
	if err != nil {
		return AssessmentResults{}, err
	}
	responses, err := assessmentDBService.GetResponseMap(instanceID, assessmentID)
	if err != nil {
		return AssessmentResults{}, err
	}

	areaResults := engine.ScoreAllAreas(questionBank, responses, catalog, assessment.Language)
	summary := engine.Summarize(areaResults)
	results := AssessmentResults{
		AreaResults: areaResults,
		Summary:     summary,
		ComputedAt:  time.Now().Unix(),
	}

	if err := resultsCache.Set(ctx, instanceID, assessmentID, cache.CachedResults{
		AreaResults: results.AreaResults,
		Summary:     results.Summary,
		ComputedAt:  results.ComputedAt,
	}, resultsCacheTTL); err != nil {
		slog.Warn("results cache write failed", slog.String("assessmentID", assessmentID), slog.String("error", err.Error()))
	}

	return results, nil
}

func invalidateResults(instanceID string, assessmentID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := resultsCache.Invalidate(ctx, instanceID, assessmentID); err != nil {
		slog.Warn("results cache invalidation failed", slog.String("assessmentID", assessmentID), slog.String("error", err.Error()))
	}
}
