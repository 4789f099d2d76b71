package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"music-storefront/internal/domain"
)

func TestID_JSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.ID
		encoded string
	}{
		{name: "Should keep a number as a number", input: `7`, want: "7", encoded: `7`},
		{name: "Should keep a text id as a string", input: `"abc"`, want: "abc", encoded: `"abc"`},
		{name: "Should keep a zero padded string quoted", input: `"01"`, want: "01", encoded: `"01"`},
		{name: "Should keep a signed string quoted", input: `"+7"`, want: "+7", encoded: `"+7"`},
		{name: "Should encode a canonical numeric string as a number", input: `"42"`, want: "42", encoded: `42`},
		{name: "Should read null as an empty id", input: `null`, want: "", encoded: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id domain.ID
			require.NoError(t, json.Unmarshal([]byte(tt.input), &id))
			assert.Equal(t, tt.want, id)

			out, err := json.Marshal(id)
			require.NoError(t, err)
			assert.Equal(t, tt.encoded, string(out))
		})
	}
}

func TestID_CommentTreeWithStringIDs(t *testing.T) {
	var comments []domain.Comment
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id": "01", "parent_id": null, "content": "a"},
		{"id": "02", "parent_id": "01", "content": "b"}
	]`), &comments))

	require.Len(t, comments, 2)
	require.NotNil(t, comments[1].ParentID)
	assert.Equal(t, domain.ID("01"), *comments[1].ParentID)

	out, err := json.Marshal(comments)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"id":"01"`)
	assert.Contains(t, string(out), `"parent_id":"01"`)
}

func TestParseID(t *testing.T) {
	t.Run("Should accept plain integers", func(t *testing.T) {
		id, err := domain.ParseID("15")
		require.NoError(t, err)
		assert.Equal(t, domain.ID("15"), id)
	})

	t.Run("Should drop leading zeros", func(t *testing.T) {
		id, err := domain.ParseID("007")
		require.NoError(t, err)
		assert.Equal(t, domain.ID("7"), id)

		out, err := json.Marshal(domain.CommentTree{ProductID: id})
		require.NoError(t, err)
		assert.Contains(t, string(out), `"product_id":7`)
	})

	t.Run("Should reject signs, text and empty input", func(t *testing.T) {
		for _, raw := range []string{"", "+7", "-1", "abc", "1.5", "99999999999999999999"} {
			_, err := domain.ParseID(raw)
			assert.Error(t, err, raw)
		}
	})
}
