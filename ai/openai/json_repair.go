package openai

import "regexp"

// unquotedKey matches an object key that lost its opening quote, e.g.
// `{ suggested_questions":` or `, text":`.
var unquotedKey = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_ ]*)"\s*:`)

// repairJSON fixes common JSON formatting issues from small local models.
// Currently it restores missing opening quotes before object keys; anything
// else is left for json.Unmarshal to reject.
func repairJSON(s string) string {
	return unquotedKey.ReplaceAllString(s, `$1"$2":`)
}
