package bridge

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Field queries a path inside a host payload. Payloads are loosely typed on
// the wire (maps, strings, raw JSON); Field normalizes them to JSON and
// applies a gjson path query. Values that cannot be represented as JSON
// yield the zero Result.
func Field(v any, path string) gjson.Result {
	switch t := v.(type) {
	case nil:
		return gjson.Result{}
	case string:
		return gjson.Get(t, path)
	case []byte:
		return gjson.GetBytes(t, path)
	case json.RawMessage:
		return gjson.GetBytes(t, path)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return gjson.Result{}
	}
	return gjson.GetBytes(raw, path)
}

// ErrMsg extracts the conventional errMsg field from a host payload, or ""
// when absent. Hosts put a human-readable status here on both success and
// failure (for example "login:ok", "request:fail timeout").
func ErrMsg(v any) string {
	return Field(v, "errMsg").String()
}
