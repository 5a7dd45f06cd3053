package types

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RESPONSE_VALUE_KIND_SINGLE = "single"
	RESPONSE_VALUE_KIND_MULTI  = "multi"
)

// ResponseValue is a tagged variant: a recorded answer is either a single
// value (single choice and text questions) or a set of values (multi choice
// questions). Kind tells which of the two fields is meaningful.
type ResponseValue struct {
	Kind      string   `bson:"kind" json:"kind"`
	Selected  string   `bson:"selected,omitempty" json:"selected,omitempty"`
	Selection []string `bson:"selection,omitempty" json:"selection,omitempty"`
}

func SingleValue(value string) ResponseValue {
	return ResponseValue{
		Kind:     RESPONSE_VALUE_KIND_SINGLE,
		Selected: value,
	}
}

func MultiValue(values ...string) ResponseValue {
	return ResponseValue{
		Kind:      RESPONSE_VALUE_KIND_MULTI,
		Selection: values,
	}
}

// Contains reports whether the given value is recorded, independent of the
// value kind.
func (v ResponseValue) Contains(value string) bool {
	switch v.Kind {
	case RESPONSE_VALUE_KIND_SINGLE:
		return v.Selected == value
	case RESPONSE_VALUE_KIND_MULTI:
		for _, s := range v.Selection {
			if s == value {
				return true
			}
		}
	}
	return false
}

// IntersectsAny reports whether any of the given values is recorded.
func (v ResponseValue) IntersectsAny(values []string) bool {
	for _, value := range values {
		if v.Contains(value) {
			return true
		}
	}
	return false
}

// MatchesCardinality checks that the value shape fits the question type:
// single choice and text questions record a single value, multi choice
// questions record a set of values.
func (v ResponseValue) MatchesCardinality(qType string) bool {
	switch qType {
	case QUESTION_TYPE_MULTI_CHOICE:
		return v.Kind == RESPONSE_VALUE_KIND_MULTI
	case QUESTION_TYPE_SINGLE_CHOICE, QUESTION_TYPE_FREE_TEXT, QUESTION_TYPE_LONG_TEXT:
		return v.Kind == RESPONSE_VALUE_KIND_SINGLE
	}
	return false
}

type Response struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	AssessmentID string             `bson:"assessmentID" json:"assessmentId"`
	QuestionID   string             `bson:"questionID" json:"questionId"`
	Value        ResponseValue      `bson:"value" json:"value"`
	RecordedAt   int64              `bson:"recordedAt" json:"recordedAt"`
}
