package types

// AreaResult is recomputed on demand from the question bank and the current
// response set; it is never stored.
type AreaResult struct {
	Area            string   `json:"area"`
	MaturityScore   float64  `json:"maturityScore"`
	ComplianceScore int      `json:"complianceScore"`
	Flags           []string `json:"flags"`
	QuestionCount   int      `json:"questionCount"`
	// AnsweredCount distinguishes "no data" from a genuine 0% compliance
	// score; consumers must check it before interpreting a zero score.
	AnsweredCount int `json:"answeredCount"`
}

type OverallSummary struct {
	OverallMaturity   float64 `json:"overallMaturity"`
	OverallCompliance int     `json:"overallCompliance"`
	TotalFlags        int     `json:"totalFlags"`
}
