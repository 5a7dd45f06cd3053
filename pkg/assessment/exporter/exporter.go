package exporter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/localization"
	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/types"
)

const (
	FORMAT_CSV  = "csv"
	FORMAT_JSON = "json"
)

// IsSupportedFormat lets callers reject a format before any output is
// produced, e.g. before HTTP response headers are written.
func IsSupportedFormat(format string) bool {
	return format == FORMAT_CSV || format == FORMAT_JSON
}

// ResponseExporter streams the responses of one assessment into a writer,
// either as CSV rows or as a JSON document. Question prompts and answers
// are resolved into the assessment's language.
type ResponseExporter struct {
	writer    io.Writer
	csvWriter *csv.Writer
	format    string
	catalog   *localization.Catalog
	lang      string
	questions map[string]types.Question
	counter   int
}

func NewResponseExporter(
	writer io.Writer,
	format string,
	questions []types.Question,
	catalog *localization.Catalog,
	lang string,
) (*ResponseExporter, error) {
	questionIndex := make(map[string]types.Question, len(questions))
	for _, q := range questions {
		questionIndex[q.ID] = q
	}

	re := &ResponseExporter{
		writer:    writer,
		format:    format,
		catalog:   catalog,
		lang:      lang,
		questions: questionIndex,
	}
	if err := re.init(); err != nil {
		return nil, err
	}
	return re, nil
}

func (re *ResponseExporter) init() error {
	var err error
	switch re.format {
	case FORMAT_CSV:
		re.csvWriter = csv.NewWriter(re.writer)
		err = re.csvWriter.Write([]string{"questionID", "area", "prompt", "value", "label", "recordedAt"})
	case FORMAT_JSON:
		_, err = re.writer.Write([]byte("{ \"responses\": ["))
	default:
		return fmt.Errorf("unsupported format: %s", re.format)
	}
	return err
}

func (re *ResponseExporter) WriteResponse(response types.Response) error {
	question, ok := re.questions[response.QuestionID]
	if !ok {
		return fmt.Errorf("unknown question in responses: %s", response.QuestionID)
	}

	switch re.format {
	case FORMAT_CSV:
		if err := re.csvWriter.Write([]string{
			question.ID,
			question.Area,
			re.catalog.Resolve(re.lang, question.PromptID),
			rawValue(response.Value),
			re.valueLabel(question, response.Value),
			strconv.FormatInt(response.RecordedAt, 10),
		}); err != nil {
			return err
		}
	case FORMAT_JSON:
		entry := map[string]interface{}{
			"questionID": question.ID,
			"area":       question.Area,
			"prompt":     re.catalog.Resolve(re.lang, question.PromptID),
			"value":      rawValue(response.Value),
			"label":      re.valueLabel(question, response.Value),
			"recordedAt": response.RecordedAt,
		}
		rV, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		if re.counter > 0 {
			if _, err := re.writer.Write([]byte(",")); err != nil {
				return err
			}
		}
		if _, err := re.writer.Write(rV); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format: %s", re.format)
	}

	re.counter += 1
	return nil
}

func (re *ResponseExporter) Finish() error {
	switch re.format {
	case FORMAT_CSV:
		re.csvWriter.Flush()
		return re.csvWriter.Error()
	case FORMAT_JSON:
		_, err := re.writer.Write([]byte("]}"))
		return err
	default:
		return fmt.Errorf("unsupported format: %s", re.format)
	}
}

func rawValue(value types.ResponseValue) string {
	if value.Kind == types.RESPONSE_VALUE_KIND_MULTI {
		return strings.Join(value.Selection, ";")
	}
	return value.Selected
}

// valueLabel resolves the selected option labels; free text answers are
// returned as is.
func (re *ResponseExporter) valueLabel(question types.Question, value types.ResponseValue) string {
	if len(question.Options) == 0 {
		return value.Selected
	}

	resolveOne := func(v string) string {
		opt, ok := question.OptionByValue(v)
		if !ok {
			return v
		}
		return re.catalog.Resolve(re.lang, opt.LabelID)
	}

	if value.Kind == types.RESPONSE_VALUE_KIND_MULTI {
		labels := make([]string, 0, len(value.Selection))
		for _, v := range value.Selection {
			labels = append(labels, resolveOne(v))
		}
		return strings.Join(labels, ";")
	}
	return resolveOne(value.Selected)
}
