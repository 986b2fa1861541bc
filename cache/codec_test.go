package cache

import (
	"reflect"
	"testing"
)

type codecSample struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Assignee string            `json:"assignee"`
	Labels   []string          `json:"labels"`
	Extra    map[string]string `json:"extra"`
	Position int               `json:"position"`
}

func TestJSONCodec_RoundTripFullValue(t *testing.T) {
	codec := JSONCodec{}
	original := codecSample{
		ID:       "task-1",
		Title:    "fix login",
		Assignee: "user-7",
		Labels:   []string{"bug", "auth"},
		Extra:    map[string]string{"severity": "high"},
		Position: 3,
	}

	payload, err := codec.Encode(original)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	var decoded codecSample
	if err := codec.Decode(payload, &decoded); err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if !reflect.DeepEqual(original, decoded) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", decoded, original)
	}
}

func TestJSONCodec_EmptyFieldsAreAbsentNotNull(t *testing.T) {
	codec := JSONCodec{}
	original := codecSample{
		ID:     "task-2",
		Title:  "triage",
		Labels: nil,
		Extra:  map[string]string{},
	}

	payload, err := codec.Encode(original)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	var generic map[string]any
	if err := codec.Decode(payload, &generic); err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	for _, field := range []string{"assignee", "labels", "extra"} {
		if _, present := generic[field]; present {
			t.Errorf("field %q should be absent from encoded payload, got %v", field, generic[field])
		}
	}
	if generic["id"] != "task-2" {
		t.Errorf("id = %v, want task-2", generic["id"])
	}
	// Zero ints are not empty values; they must survive.
	if _, present := generic["position"]; !present {
		t.Error("position should be present even when zero")
	}
}

func TestJSONCodec_PrunesNestedObjects(t *testing.T) {
	codec := JSONCodec{}
	original := map[string]any{
		"project": "p1",
		"column": map[string]any{
			"name":  "",
			"tasks": []any{},
		},
		"rows": []any{
			map[string]any{"id": "a", "note": ""},
			map[string]any{"id": "b"},
		},
	}

	payload, err := codec.Encode(original)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	var decoded map[string]any
	if err := codec.Decode(payload, &decoded); err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if _, present := decoded["column"]; present {
		t.Errorf("column pruned to empty should be absent, got %v", decoded["column"])
	}

	rows, ok := decoded["rows"].([]any)
	if !ok {
		t.Fatalf("rows missing or wrong type: %v", decoded["rows"])
	}
	// Array elements are never dropped, only their empty fields are.
	if len(rows) != 2 {
		t.Fatalf("rows length = %d, want 2", len(rows))
	}
	first, ok := rows[0].(map[string]any)
	if !ok {
		t.Fatalf("rows[0] wrong type: %v", rows[0])
	}
	if _, present := first["note"]; present {
		t.Errorf("empty note field should be absent, got %v", first["note"])
	}
}

func TestJSONCodec_DecodeMalformedPayload(t *testing.T) {
	codec := JSONCodec{}
	var dest codecSample
	if err := codec.Decode([]byte("{not json"), &dest); err == nil {
		t.Error("expected error for malformed payload")
	}
}

func TestMsgpackCodec_RoundTrip(t *testing.T) {
	codec := MsgpackCodec{}
	original := codecSample{
		ID:       "task-3",
		Title:    "roll out",
		Labels:   []string{"release"},
		Position: 1,
	}

	payload, err := codec.Encode(original)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	var decoded codecSample
	if err := codec.Decode(payload, &decoded); err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if !reflect.DeepEqual(original, decoded) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", decoded, original)
	}
}

func TestMsgpackCodec_DecodeMalformedPayload(t *testing.T) {
	codec := MsgpackCodec{}
	var dest codecSample
	if err := codec.Decode([]byte{0xc1, 0xff}, &dest); err == nil {
		t.Error("expected error for malformed payload")
	}
}
