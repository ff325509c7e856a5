package bridge

import "testing"

func TestErrMsg(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"map payload", map[string]any{"errMsg": "login:ok"}, "login:ok"},
		{"json string", `{"errMsg":"request:fail timeout"}`, "request:fail timeout"},
		{"json bytes", []byte(`{"errMsg":"ok"}`), "ok"},
		{"missing field", map[string]any{"code": 1}, ""},
		{"nil payload", nil, ""},
		{"unmarshalable", func() {}, ""},
	}
	for _, tc := range cases {
		if got := ErrMsg(tc.in); got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestFieldPath(t *testing.T) {
	payload := map[string]any{
		"data": map[string]any{"items": []any{"a", "b"}},
	}
	if got := Field(payload, "data.items.1").String(); got != "b" {
		t.Errorf("expected b, got %q", got)
	}
	if Field(payload, "data.missing").Exists() {
		t.Error("missing path should not exist")
	}
}
