package types

const (
	AREA_GOVERNANCE  = "governance"
	AREA_PROCUREMENT = "procurement"
	AREA_SECURITY    = "security"
	AREA_DATA        = "data"
	AREA_PRIVACY     = "privacy"
)

const (
	QUESTION_TYPE_SINGLE_CHOICE = "single_choice"
	QUESTION_TYPE_MULTI_CHOICE  = "multi_choice"
	QUESTION_TYPE_FREE_TEXT     = "free_text"
	QUESTION_TYPE_LONG_TEXT     = "long_text"
)

func AssessmentAreas() []string {
	return []string{
		AREA_GOVERNANCE,
		AREA_PROCUREMENT,
		AREA_SECURITY,
		AREA_DATA,
		AREA_PRIVACY,
	}
}

func IsKnownQuestionType(qType string) bool {
	switch qType {
	case QUESTION_TYPE_SINGLE_CHOICE, QUESTION_TYPE_MULTI_CHOICE, QUESTION_TYPE_FREE_TEXT, QUESTION_TYPE_LONG_TEXT:
		return true
	}
	return false
}

type QuestionOption struct {
	Value string `bson:"value" json:"value"`
	// Label text is resolved through the localization catalog
	LabelID        string `bson:"labelID" json:"labelId"`
	MaturityWeight int    `bson:"maturityWeight,omitempty" json:"maturityWeight,omitempty"` // 1-5, 0 means the option carries no maturity weight
}

// Dependency describes a controlling question and the values of its
// response for which the dependent question becomes visible.
type Dependency struct {
	QuestionID string   `bson:"questionID" json:"questionId"`
	Values     []string `bson:"values" json:"values"`
}

type Question struct {
	ID                string           `bson:"id" json:"id"`
	Area              string           `bson:"area" json:"area"`
	Type              string           `bson:"type" json:"type"`
	PromptID          string           `bson:"promptID" json:"promptId"`
	Options           []QuestionOption `bson:"options,omitempty" json:"options,omitempty"`
	Required          bool             `bson:"required" json:"required"`
	FlagTriggerValues []string         `bson:"flagTriggerValues,omitempty" json:"flagTriggerValues,omitempty"`
	FlagMessageID     string           `bson:"flagMessageID,omitempty" json:"flagMessageId,omitempty"`
	DependsOn         *Dependency      `bson:"dependsOn,omitempty" json:"dependsOn,omitempty"`
}

// OptionByValue returns the option with the given value, if present.
func (q Question) OptionByValue(value string) (QuestionOption, bool) {
	for _, opt := range q.Options {
		if opt.Value == value {
			return opt, true
		}
	}
	return QuestionOption{}, false
}

func QuestionsForArea(questions []Question, area string) []Question {
	filtered := []Question{}
	for _, q := range questions {
		if q.Area == area {
			filtered = append(filtered, q)
		}
	}
	return filtered
}
