package cache

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// JSONCodec encodes values as JSON, omitting object fields whose value is
// null, the empty string, an empty array, or an empty object. The pruning
// keeps cached payloads small; the round trip is deliberately lossy for those
// fields (they decode as absent, not null), which callers accept by contract.
type JSONCodec struct{}

// Encode marshals v, strips empty object fields from the generic form, and
// re-marshals the pruned result. The whole payload is produced in memory
// before any store write happens, so an entry is never partially written.
func (JSONCodec) Encode(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode cache payload: %w", err)
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("encode cache payload: %w", err)
	}

	pruned, _ := pruneEmpty(generic)
	out, err := json.Marshal(pruned)
	if err != nil {
		return nil, fmt.Errorf("encode cache payload: %w", err)
	}
	return out, nil
}

// Decode unmarshals payload into dest. Malformed payloads return an error the
// accessor treats as a cache miss.
func (JSONCodec) Decode(payload []byte, dest any) error {
	if err := json.Unmarshal(payload, dest); err != nil {
		return fmt.Errorf("decode cache payload: %w", err)
	}
	return nil
}

// pruneEmpty walks the generic JSON form and removes object fields that are
// null, "", empty arrays, or empty objects. The second return reports whether
// the value itself is empty, which parents use to drop the field. Array
// elements are pruned recursively but never dropped: only object fields are
// omitted, so list lengths survive the round trip.
func pruneEmpty(v any) (any, bool) {
	switch val := v.(type) {
	case nil:
		return nil, true
	case string:
		return val, val == ""
	case map[string]any:
		out := make(map[string]any, len(val))
		for key, item := range val {
			pruned, empty := pruneEmpty(item)
			if empty {
				continue
			}
			out[key] = pruned
		}
		return out, len(out) == 0
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			pruned, _ := pruneEmpty(item)
			out[i] = pruned
		}
		return out, len(out) == 0
	default:
		return val, false
	}
}

// MsgpackCodec trades the JSON pruning pass for msgpack's denser wire form.
// Deployments that care more about encode throughput than about omitting
// empty fields can wire this codec instead of JSONCodec.
type MsgpackCodec struct{}

func (MsgpackCodec) Encode(v any) ([]byte, error) {
	payload, err := msgpack.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode cache payload: %w", err)
	}
	return payload, nil
}

func (MsgpackCodec) Decode(payload []byte, dest any) error {
	if err := msgpack.Unmarshal(payload, dest); err != nil {
		return fmt.Errorf("decode cache payload: %w", err)
	}
	return nil
}
