package jsonval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustUnmarshal(t *testing.T, data string) Value {
	t.Helper()
	v, err := Unmarshal([]byte(data))
	require.NoError(t, err)
	return v
}

func TestStrip(t *testing.T) {
	drop := NewDropSet("embedding", "vector")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "top level and nested keys removed",
			input: `{"title":"x","embedding":[1,2,3],"nested":{"vector":[0.1]}}`,
			want:  `{"title":"x","nested":{}}`,
		},
		{
			name:  "keys inside sequence of mappings",
			input: `{"tracks":[{"title":"a","embedding":[1]},{"title":"b","embedding":[2]}]}`,
			want:  `{"tracks":[{"title":"a"},{"title":"b"}]}`,
		},
		{
			name:  "sequences never truncated",
			input: `{"values":[1,null,{"vector":[9]},"s"]}`,
			want:  `{"values":[1,null,{},"s"]}`,
		},
		{
			name:  "case-insensitive match",
			input: `{"Embedding":[1],"VECTOR":[2],"title":"x"}`,
			want:  `{"title":"x"}`,
		},
		{
			name:  "member order preserved",
			input: `{"z":1,"embedding":[0],"a":2,"m":3}`,
			want:  `{"z":1,"a":2,"m":3}`,
		},
		{
			name:  "scalar passes through",
			input: `"just a string"`,
			want:  `"just a string"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Strip(mustUnmarshal(t, tt.input), drop)

			out, err := Marshal(got)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestStripEmptyDropSetIsIdentity(t *testing.T) {
	v := mustUnmarshal(t, `{"a":[1,{"b":null}],"c":"x","d":1.5}`)

	assert.Equal(t, v, Strip(v, NewDropSet()))
}

func TestStripIsIdempotent(t *testing.T) {
	drop := NewDropSet("embedding")
	v := mustUnmarshal(t, `{"a":{"embedding":[1]},"b":[{"embedding":[2],"k":1}]}`)

	once := Strip(v, drop)
	twice := Strip(once, drop)

	assert.Equal(t, once, twice)
}

func TestStripDoesNotMutateInput(t *testing.T) {
	input := `{"keep":{"embedding":[1,2],"title":"x"}}`
	v := mustUnmarshal(t, input)

	_ = Strip(v, NewDropSet("embedding"))

	out, err := Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, input, string(out))
}

func TestDropSetHas(t *testing.T) {
	set := NewDropSet("AI_Meta", "_internal")

	assert.True(t, set.Has("ai_meta"))
	assert.True(t, set.Has("AI_META"))
	assert.True(t, set.Has("_internal"))
	assert.False(t, set.Has("title"))
}
