package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTalkRecord_MarshalJSON_FieldOrder(t *testing.T) {
	out, err := json.Marshal(&TalkRecord{})
	require.NoError(t, err)

	want := `{"id":0,"admin_type":"","type":"","duration":0,"level":"",` +
		`"track_title":"","timerange":"","tags":null,"url":"","tag_categories":null,` +
		`"sub_community":"","title":"","sub_title":"","status":"","language":"",` +
		`"have_tickets":null,"abstract_long":null,"abstract_short":"","abstract_extra":"",` +
		`"speakers":"","companies":"","emails":"","twitters":""}`
	assert.Equal(t, want, string(out))
}

func TestTalkRecord_MarshalJSON_UserVotes(t *testing.T) {
	t.Run("nil omits the field", func(t *testing.T) {
		out, err := json.Marshal(&TalkRecord{ID: 7})
		require.NoError(t, err)
		assert.NotContains(t, string(out), "user_votes")
	})

	t.Run("empty non-nil emits an empty list", func(t *testing.T) {
		out, err := json.Marshal(&TalkRecord{ID: 7, UserVotes: []VoteEntry{}})
		require.NoError(t, err)
		assert.Contains(t, string(out), `"user_votes":[]`)
	})

	t.Run("entries come last", func(t *testing.T) {
		out, err := json.Marshal(&TalkRecord{ID: 7, UserVotes: []VoteEntry{{"31": 8.5}}})
		require.NoError(t, err)
		doc := string(out)
		assert.True(t, strings.HasSuffix(doc, `"user_votes":[{"31":8.5}]}`), doc)
	})
}

func TestReport_MarshalJSON_PreservesInsertionOrder(t *testing.T) {
	r := &Report{}
	r.AddBucket("Keynote", []*TalkRecord{{ID: 10}})
	r.AddBucket("talk", []*TalkRecord{{ID: 9}, {ID: 2}})

	out, err := json.Marshal(r)
	require.NoError(t, err)
	doc := string(out)

	// Bucket keys stay in insertion order, not sorted.
	keynotePos := strings.Index(doc, `"Keynote"`)
	talkPos := strings.Index(doc, `"talk"`)
	require.NotEqual(t, -1, keynotePos)
	require.NotEqual(t, -1, talkPos)
	assert.Less(t, keynotePos, talkPos)

	// Talk keys are decimal IDs in bucket order, not numeric order.
	nine := strings.Index(doc, `"9":`)
	two := strings.Index(doc, `"2":`)
	require.NotEqual(t, -1, nine)
	require.NotEqual(t, -1, two)
	assert.Less(t, nine, two)

	// The document is valid JSON with the right shape.
	var decoded map[string]map[string]*TalkRecord
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, int64(10), decoded["Keynote"]["10"].ID)
	assert.Equal(t, int64(2), decoded["talk"]["2"].ID)
}

func TestReport_MarshalJSON_Empty(t *testing.T) {
	out, err := json.Marshal(&Report{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))
}

func TestReport_TalkCount(t *testing.T) {
	r := &Report{}
	assert.Equal(t, 0, r.TalkCount())
	r.AddBucket("talk", []*TalkRecord{{ID: 1}, {ID: 2}})
	r.AddBucket("poster", []*TalkRecord{{ID: 3}})
	assert.Equal(t, 3, r.TalkCount())
}
