package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

type snowflake string

type messageCount int

type channelName string

func (c channelName) String() string { return "#" + string(c) }

func TestStringify(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "null"},
		{"string", "Jamey", "Jamey"},
		{"int", 42, "42"},
		{"int64", int64(-7), "-7"},
		{"float whole", float64(42), "42"},
		{"float frac", 42.5, "42.5"},
		{"bool", false, "false"},
		{"json number", json.Number("12345678901234567890"), "12345678901234567890"},
		{"bytes", []byte("raw"), "raw"},
		{"stringer", channelName("general"), "#general"},
		{"error", errors.New("boom"), "boom"},
		{"map", map[string]any{"name": "Jamey", "id": 1}, `{"id":1,"name":"Jamey"}`},
		{"slice", []any{"a", 1}, `["a",1]`},
		{"typed nil map", map[string]any(nil), "null"},
		{"named string", snowflake("1234"), "1234"},
		{"named int", messageCount(7), "7"},
		{"mention in map", map[string]any{"m": "<@123> & x"}, `{"m":"<@123> & x"}`},
	}

	for _, tc := range cases {
		if got := stringify(tc.in); got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestStringify_UnmarshalableFallsBack(t *testing.T) {
	ch := make(chan int)
	if got, want := stringify(ch), fmt.Sprint(ch); got != want {
		t.Errorf("expected fmt.Sprint form %q, got %q", want, got)
	}
}

func TestSnapshot_UnmarshalableRecord(t *testing.T) {
	got := snapshot(map[string]any{"fn": func() {}})
	if !strings.HasPrefix(got, `map[string]interface {}{"fn":(func())(`) {
		t.Errorf("expected %%#v form, got %q", got)
	}
}

func TestSnapshot_KeepsMentionsVerbatim(t *testing.T) {
	got := snapshot(map[string]any{"Message": "hey <@123> & x"})
	if got != `{"Message":"hey <@123> & x"}` {
		t.Errorf("unexpected snapshot: %s", got)
	}
}
