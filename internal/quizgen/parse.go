package quizgen

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// questionSchemaJSON is the per-entry contract: a prompt, exactly four
// options (strings or numbers), a correct index in range, and an
// optional explanation. Entries failing it are dropped, not fatal.
const questionSchemaJSON = `{
	"type": "object",
	"required": ["question", "options", "correct"],
	"properties": {
		"question": {"type": "string", "minLength": 1},
		"options": {
			"type": "array",
			"minItems": 4,
			"maxItems": 4,
			"items": {"type": ["string", "number"]}
		},
		"correct": {"type": "integer", "minimum": 0, "maximum": 3},
		"explanation": {"type": "string"}
	}
}`

var compileQuestionSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	var def any
	if err := json.Unmarshal([]byte(questionSchemaJSON), &def); err != nil {
		return nil, err
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://question.json", def); err != nil {
		return nil, err
	}
	return c.Compile("schema://question.json")
})

// extractEntries pulls the raw question list out of a provider payload.
// Accepts {"questions": [...]}, {"quiz": [...]}, or a bare array.
func extractEntries(raw json.RawMessage) ([]json.RawMessage, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		for _, key := range []string{"questions", "quiz"} {
			list, ok := envelope[key]
			if !ok {
				continue
			}
			var entries []json.RawMessage
			if err := json.Unmarshal(list, &entries); err != nil {
				return nil, &MalformedResponseError{
					Err: fmt.Errorf("key %q is not an array: %w", key, err),
				}
			}
			return entries, nil
		}
		// Parsed as an object but no recognizable key.
		return nil, nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err == nil {
		return entries, nil
	}

	return nil, &MalformedResponseError{
		Err: fmt.Errorf("payload is neither an object nor an array"),
	}
}

// parseQuestions validates each raw entry and converts the survivors to
// Questions. Invalid entries are dropped silently.
func parseQuestions(entries []json.RawMessage) []Question {
	schema, err := compileQuestionSchema()
	if err != nil {
		// Compile failure means a broken embedded schema, not bad input.
		panic(fmt.Sprintf("quizgen: compile question schema: %v", err))
	}

	var out []Question
	for _, entry := range entries {
		var parsed any
		if err := json.Unmarshal(entry, &parsed); err != nil {
			continue
		}
		if err := schema.Validate(parsed); err != nil {
			continue
		}

		var q rawQuestion
		if err := json.Unmarshal(entry, &q); err != nil {
			continue
		}

		options := make([]string, len(q.Options))
		for i, opt := range q.Options {
			options[i] = stringify(opt)
		}

		explanation := q.Explanation
		if explanation == "" {
			explanation = "No explanation provided."
		}

		out = append(out, Question{
			Prompt:      q.Question,
			Options:     options,
			Correct:     q.Correct,
			Explanation: explanation,
		})
	}
	return out
}

type rawQuestion struct {
	Question    string `json:"question"`
	Options     []any  `json:"options"`
	Correct     int    `json:"correct"`
	Explanation string `json:"explanation"`
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
