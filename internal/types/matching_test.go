package types

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoundSections_AddPreservesInsertionOrder(t *testing.T) {
	var fs FoundSections
	fs.Add("python", "used python daily")
	fs.Add("nlp", "nlp pipelines")
	fs.Add("python", "python scripting")
	fs.Add("machine learning", "machine learning models")

	assert.Equal(t, []string{"python", "nlp", "machine learning"}, fs.Keywords())

	contexts, ok := fs.Get("python")
	require.True(t, ok)
	assert.Equal(t, []string{"used python daily", "python scripting"}, contexts)
}

func TestFoundSections_GetMissingKeyword(t *testing.T) {
	fs := FoundSections{{Keyword: "python", Contexts: []string{"ctx"}}}

	contexts, ok := fs.Get("golang")
	assert.False(t, ok)
	assert.Nil(t, contexts)
}

func TestFoundSections_JSONRoundTripKeepsOrder(t *testing.T) {
	fs := FoundSections{
		{Keyword: "zebra", Contexts: []string{"a"}},
		{Keyword: "alpha", Contexts: []string{"b", "c"}},
		{Keyword: "middle", Contexts: []string{}},
	}

	data, err := json.Marshal(fs)
	require.NoError(t, err)

	var decoded FoundSections
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, []string{"zebra", "alpha", "middle"}, decoded.Keywords())
}

func TestFoundSections_UnmarshalRejectsMalformedShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "object instead of array", input: `{"python": ["ctx"]}`},
		{name: "empty keyword", input: `[{"keyword": "", "contexts": ["ctx"]}]`},
		{name: "non-string context", input: `[{"keyword": "python", "contexts": [42]}]`},
		{name: "contexts not a sequence", input: `[{"keyword": "python", "contexts": "ctx"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fs FoundSections
			err := json.Unmarshal([]byte(tt.input), &fs)
			require.Error(t, err)

			var schemaErr *SchemaError
			assert.True(t, errors.As(err, &schemaErr), "expected SchemaError, got %T", err)
		})
	}
}

func TestResumeResult_ExperienceDistinguishesAbsentFromZero(t *testing.T) {
	zero := 0.0

	withZero := ResumeResult{Filename: "a.pdf", Experience: &zero, FoundSections: FoundSections{}}
	data, err := json.Marshal(withZero)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"experience":0`)

	absent := ResumeResult{Filename: "b.pdf", FoundSections: FoundSections{}}
	data, err = json.Marshal(absent)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"experience":null`)
}

func TestMatchRequest_Validate(t *testing.T) {
	valid := MatchRequest{
		JobDescription: "Senior Go developer",
		Mandatory:      []string{"go"},
		MinExperience:  3,
	}
	assert.NoError(t, valid.Validate())

	missingDescription := MatchRequest{Mandatory: []string{"go"}}
	assert.Error(t, missingDescription.Validate())

	noMandatory := MatchRequest{JobDescription: "desc"}
	assert.Error(t, noMandatory.Validate())

	negativeExperience := MatchRequest{
		JobDescription: "desc",
		Mandatory:      []string{"go"},
		MinExperience:  -1,
	}
	assert.Error(t, negativeExperience.Validate())
}
