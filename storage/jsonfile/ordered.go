package jsonfile

import (
	"bytes"
	"encoding/json"
)

// orderedPair is one key/value entry of an ordered JSON object.
type orderedPair struct {
	Key   string
	Value any
}

// marshalOrderedObject renders a JSON object whose keys appear in slice
// order. encoding/json sorts map keys, which would reorder the keyed stores
// on every rewrite and ruin their diffs.
func marshalOrderedObject(pairs []orderedPair) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, pair := range pairs {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString("\n  ")

		key, err := json.Marshal(pair.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteString(": ")

		value, err := json.MarshalIndent(pair.Value, "  ", "  ")
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}

	if len(pairs) > 0 {
		buf.WriteByte('\n')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
