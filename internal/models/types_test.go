package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_NilStoredAsEmptyArray(t *testing.T) {
	var l StringList
	v, err := l.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestStringList_Scan(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, StringList{"a", "b"}, l)

	require.NoError(t, l.Scan(nil))
	assert.NotNil(t, l)
	assert.Empty(t, l)

	assert.Error(t, l.Scan(42))
}

func TestJSONBlob_RoundTripsOpaqueDocument(t *testing.T) {
	var in CreateQuizResultInput
	require.NoError(t, json.Unmarshal([]byte(`{"quiz_id":"q","score":0,"total_points":10,"answers":{"1":"b","2":["x"]}}`), &in))
	assert.JSONEq(t, `{"1":"b","2":["x"]}`, string(in.Answers))
	require.NotNil(t, in.Score)
	assert.Equal(t, 0, *in.Score)

	v, err := in.Answers.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `{"1":"b","2":["x"]}`, v.(string))

	var empty JSONBlob
	v, err = empty.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	out, err := json.Marshal(QuizResult{})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"answers":null`)
}
