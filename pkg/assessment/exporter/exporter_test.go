package exporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/localization"
	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/types"
)

func testQuestions() []types.Question {
	return []types.Question{
		{
			ID:       "q1",
			Area:     types.AREA_GOVERNANCE,
			Type:     types.QUESTION_TYPE_SINGLE_CHOICE,
			PromptID: "questions.q1.prompt",
			Options: []types.QuestionOption{
				{Value: "yes", LabelID: "questions.q1.options.yes"},
				{Value: "no", LabelID: "questions.q1.options.no"},
			},
		},
		{
			ID:       "q2",
			Area:     types.AREA_SECURITY,
			Type:     types.QUESTION_TYPE_MULTI_CHOICE,
			PromptID: "questions.q2.prompt",
			Options: []types.QuestionOption{
				{Value: "mfa", LabelID: "questions.q2.options.mfa"},
				{Value: "encryption", LabelID: "questions.q2.options.encryption"},
			},
		},
		{
			ID:       "q3",
			Area:     types.AREA_GOVERNANCE,
			Type:     types.QUESTION_TYPE_FREE_TEXT,
			PromptID: "questions.q3.prompt",
		},
	}
}

func testCatalog() *localization.Catalog {
	return localization.NewCatalog(map[string]map[string]string{
		localization.LANG_EN: {
			"questions.q1.prompt":             "First question",
			"questions.q1.options.yes":        "Yes",
			"questions.q1.options.no":         "No",
			"questions.q2.prompt":             "Second question",
			"questions.q2.options.mfa":        "Multi-factor authentication",
			"questions.q2.options.encryption": "Encryption",
			"questions.q3.prompt":             "Third question",
		},
	})
}

func TestResponseExporterCSV(t *testing.T) {
	buf := &bytes.Buffer{}
	re, err := NewResponseExporter(buf, FORMAT_CSV, testQuestions(), testCatalog(), localization.LANG_EN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	responses := []types.Response{
		{QuestionID: "q1", Value: types.SingleValue("yes"), RecordedAt: 1700000000},
		{QuestionID: "q2", Value: types.MultiValue("mfa", "encryption"), RecordedAt: 1700000001},
		{QuestionID: "q3", Value: types.SingleValue("Jane Doe"), RecordedAt: 1700000002},
	}
	for _, r := range responses {
		if err := re.WriteResponse(r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if err := re.Finish(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("unexpected number of lines: %d", len(lines))
	}
	if lines[0] != "questionID,area,prompt,value,label,recordedAt" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "Yes") {
		t.Errorf("expected resolved label in row: %s", lines[1])
	}
	if !strings.Contains(lines[2], "mfa;encryption") {
		t.Errorf("expected joined raw values in row: %s", lines[2])
	}
	if !strings.Contains(lines[3], "Jane Doe") {
		t.Errorf("expected free text answer in row: %s", lines[3])
	}
}

func TestResponseExporterJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	re, err := NewResponseExporter(buf, FORMAT_JSON, testQuestions(), testCatalog(), localization.LANG_EN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := re.WriteResponse(types.Response{QuestionID: "q1", Value: types.SingleValue("no")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := re.WriteResponse(types.Response{QuestionID: "q2", Value: types.MultiValue("mfa")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := re.Finish(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var parsed struct {
		Responses []map[string]interface{} `json:"responses"`
	}
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(parsed.Responses) != 2 {
		t.Fatalf("unexpected number of entries: %d", len(parsed.Responses))
	}
	if parsed.Responses[0]["label"] != "No" {
		t.Errorf("unexpected label: %v", parsed.Responses[0]["label"])
	}
}

func TestResponseExporterUnknownFormat(t *testing.T) {
	_, err := NewResponseExporter(&bytes.Buffer{}, "xml", testQuestions(), testCatalog(), localization.LANG_EN)
	if err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestIsSupportedFormat(t *testing.T) {
	if !IsSupportedFormat(FORMAT_CSV) || !IsSupportedFormat(FORMAT_JSON) {
		t.Error("expected csv and json to be supported")
	}
	if IsSupportedFormat("xml") || IsSupportedFormat("") {
		t.Error("expected other formats to be rejected")
	}
}

func TestResponseExporterUnknownQuestion(t *testing.T) {
	re, err := NewResponseExporter(&bytes.Buffer{}, FORMAT_CSV, testQuestions(), testCatalog(), localization.LANG_EN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := re.WriteResponse(types.Response{QuestionID: "ghost", Value: types.SingleValue("x")}); err == nil {
		t.Error("expected error for unknown question")
	}
}
