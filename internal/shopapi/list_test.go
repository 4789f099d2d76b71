package shopapi_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"music-storefront/internal/shopapi"
)

func TestListUnmarshal(t *testing.T) {
	cases := map[string]struct {
		input string
		want  int
	}{
		"bare array": {input: `[1, 2, 3]`, want: 3},
		"envelope":   {input: `{"data": [1], "total": 10}`, want: 1},
		"null":       {input: `null`, want: 0},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var list shopapi.List[int]
			require.NoError(t, json.Unmarshal([]byte(tc.input), &list))
			assert.Len(t, list, tc.want)
		})
	}
}
