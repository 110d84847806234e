package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeUnmarshalJSON(t *testing.T) {
	t.Run("record fields keep document order", func(t *testing.T) {
		var node Node
		err := json.Unmarshal([]byte(`{"zebra": 1, "apple": 2, "mango": 3}`), &node)
		require.NoError(t, err)
		require.Equal(t, NodeRecord, node.Kind)

		keys := make([]string, 0, len(node.Fields))
		for _, field := range node.Fields {
			keys = append(keys, field.Key)
		}
		assert.Equal(t, []string{"zebra", "apple", "mango"}, keys)
	})

	t.Run("nested structures", func(t *testing.T) {
		var node Node
		err := json.Unmarshal([]byte(`{"list": [{"name": "a"}, {"name": "b"}], "flag": true, "missing": null}`), &node)
		require.NoError(t, err)

		list := node.Field("list")
		require.NotNil(t, list)
		require.Equal(t, NodeList, list.Kind)
		require.Len(t, list.List, 2)
		assert.Equal(t, "a", list.List[0].Field("name").Str)

		flag := node.Field("flag")
		require.NotNil(t, flag)
		assert.Equal(t, NodeBool, flag.Kind)
		assert.True(t, flag.Bool)

		missing := node.Field("missing")
		require.NotNil(t, missing)
		assert.Equal(t, NodeNull, missing.Kind)
	})

	t.Run("numbers keep their literal text", func(t *testing.T) {
		var node Node
		err := json.Unmarshal([]byte(`{"seats": 120, "rate": 94.5}`), &node)
		require.NoError(t, err)

		seats, ok := node.Field("seats").ScalarText()
		require.True(t, ok)
		assert.Equal(t, "120", seats)

		rate, ok := node.Field("rate").ScalarText()
		require.True(t, ok)
		assert.Equal(t, "94.5", rate)
	})

	t.Run("invalid JSON fails", func(t *testing.T) {
		var node Node
		err := json.Unmarshal([]byte(`{"open": `), &node)
		assert.Error(t, err)
	})
}

func TestNodeScalarText(t *testing.T) {
	tests := []struct {
		name string
		node Node
		text string
		ok   bool
	}{
		{"string", Node{Kind: NodeString, Str: "hello"}, "hello", true},
		{"number", Node{Kind: NodeNumber, Str: "42"}, "42", true},
		{"bool", Node{Kind: NodeBool, Bool: true}, "", false},
		{"null", Node{Kind: NodeNull}, "", false},
		{"record", Node{Kind: NodeRecord}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, ok := tt.node.ScalarText()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.text, text)
		})
	}
}

func TestNodeField(t *testing.T) {
	var node Node
	require.NoError(t, json.Unmarshal([]byte(`{"name": "x"}`), &node))

	assert.NotNil(t, node.Field("name"))
	assert.Nil(t, node.Field("absent"))

	scalar := Node{Kind: NodeString, Str: "x"}
	assert.Nil(t, scalar.Field("name"))
}
