package engine

import (
	"math"

	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/localization"
	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/types"
)

// ScoreArea computes the maturity and compliance result for one area.
//
// Maturity is the average maturity weight over answered single choice
// questions whose selected option carries a weight, rounded half-up to one
// decimal; 0 when no weighted answers exist. Compliance scores every
// answered question 100 when unflagged and 0 when flagged, averaged and
// rounded half-up to the nearest integer; 0 when nothing is answered.
// AnsweredCount is the side channel that tells "no data" apart from a
// genuine 0%. Hidden questions are skipped entirely, even when a response
// recorded while they were visible is still stored.
func ScoreArea(area string, questions []types.Question, responses map[string]types.Response, catalog *localization.Catalog, lang string) types.AreaResult {
	areaQuestions := types.QuestionsForArea(questions, area)
	visible := VisibleQuestions(areaQuestions, responses)

	result := types.AreaResult{
		Area:          area,
		Flags:         EvaluateFlags(visible, responses, catalog, lang),
		QuestionCount: len(visible),
	}

	maturitySum := 0
	maturityCount := 0
	complianceSum := 0

	for _, q := range visible {
		response, answered := responses[q.ID]
		if !answered {
			continue
		}
		result.AnsweredCount++

		if IsFlagged(q, response, answered) {
			// scores 0 towards compliance
		} else {
			complianceSum += 100
		}

		if q.Type == types.QUESTION_TYPE_SINGLE_CHOICE && response.Value.Kind == types.RESPONSE_VALUE_KIND_SINGLE {
			if opt, ok := q.OptionByValue(response.Value.Selected); ok && opt.MaturityWeight > 0 {
				maturitySum += opt.MaturityWeight
				maturityCount++
			}
		}
	}

	if maturityCount > 0 {
		result.MaturityScore = roundToOneDecimal(float64(maturitySum) / float64(maturityCount))
	}
	if result.AnsweredCount > 0 {
		result.ComplianceScore = roundHalfUp(float64(complianceSum) / float64(result.AnsweredCount))
	}
	return result
}

// ScoreAllAreas computes results for every assessment area in catalog
// order.
func ScoreAllAreas(questions []types.Question, responses map[string]types.Response, catalog *localization.Catalog, lang string) []types.AreaResult {
	results := make([]types.AreaResult, 0, len(types.AssessmentAreas()))
	for _, area := range types.AssessmentAreas() {
		results = append(results, ScoreArea(area, questions, responses, catalog, lang))
	}
	return results
}

// Summarize aggregates area results into the overall summary. Areas without
// data for a metric are excluded from that metric's denominator instead of
// being averaged in as zero: maturity skips areas without weighted answers,
// compliance skips areas without any answered question.
func Summarize(areaResults []types.AreaResult) types.OverallSummary {
	summary := types.OverallSummary{}

	maturitySum := 0.0
	maturityCount := 0
	complianceSum := 0
	complianceCount := 0

	for _, ar := range areaResults {
		summary.TotalFlags += len(ar.Flags)

		if ar.MaturityScore > 0 {
			maturitySum += ar.MaturityScore
			maturityCount++
		}
		if ar.AnsweredCount > 0 {
			complianceSum += ar.ComplianceScore
			complianceCount++
		}
	}

	if maturityCount > 0 {
		summary.OverallMaturity = roundToOneDecimal(maturitySum / float64(maturityCount))
	}
	if complianceCount > 0 {
		summary.OverallCompliance = roundHalfUp(float64(complianceSum) / float64(complianceCount))
	}
	return summary
}

func roundToOneDecimal(value float64) float64 {
	return math.Floor(value*10+0.5) / 10
}

func roundHalfUp(value float64) int {
	return int(math.Floor(value + 0.5))
}
