package document

import (
	"bytes"
	"fmt"
	"math"

	"github.com/go-json-experiment/json/jsontext"
)

// DecodeJSON parses a single JSON value into an order-preserving Node tree.
//
// It is built on jsontext's token-level decoder rather than
// encoding/json's map-based decoding: a map would discard the source
// object's key order, which the validator relies on for deterministic
// diagnostics.
func DecodeJSON(data []byte) (*Node, error) {
	dec := jsontext.NewDecoder(bytes.NewReader(data))
	n, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func decodeValue(dec *jsontext.Decoder) (*Node, error) {
	tok, err := dec.ReadToken()
	if err != nil {
		return nil, err
	}
	switch tok.Kind() {
	case 'n':
		return Null(), nil
	case 't', 'f':
		return Bool(tok.Bool()), nil
	case '"':
		return String(tok.String()), nil
	case '0':
		return numberNode(tok.Float()), nil
	case '{':
		obj := NewObject()
		for dec.PeekKind() != '}' {
			key, err := dec.ReadToken()
			if err != nil {
				return nil, err
			}
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj.Set(key.String(), val)
		}
		if _, err := dec.ReadToken(); err != nil { // consume '}'
			return nil, err
		}
		return Obj(obj), nil
	case '[':
		var items []*Node
		for dec.PeekKind() != ']' {
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			items = append(items, val)
		}
		if _, err := dec.ReadToken(); err != nil { // consume ']'
			return nil, err
		}
		return Array(items...), nil
	default:
		return nil, fmt.Errorf("document: unexpected token kind %q", tok.Kind())
	}
}

// numberNode classifies a decoded number the way §4.4.4 documents: the
// value is always available as a float64 and is additionally tagged
// integer/unsigned when it has no fractional part and fits the
// corresponding Go range. Large integers beyond float64's 53-bit mantissa
// lose precision here, matching the specification's own documented
// limitation rather than reaching for arbitrary-precision arithmetic.
func numberNode(f float64) *Node {
	if math.IsInf(f, 0) || f != math.Trunc(f) {
		return Float(f)
	}
	switch {
	case f >= 0 && f <= math.MaxUint64:
		return Uint(uint64(f))
	case f >= math.MinInt64 && f < 0:
		return Int(int64(f))
	default:
		return Float(f)
	}
}

// EncodeJSON renders a Node back to canonical JSON, preserving object key
// order. Used for the Schema.String debug rendering (§12), not on the
// validation hot path.
func EncodeJSON(n *Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := jsontext.NewEncoder(&buf)
	if err := encodeValue(enc, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeValue(enc *jsontext.Encoder, n *Node) error {
	if n == nil {
		return enc.WriteToken(jsontext.Null)
	}
	switch n.kind {
	case KindNull:
		return enc.WriteToken(jsontext.Null)
	case KindBool:
		return enc.WriteToken(jsontext.Bool(n.b))
	case KindInt:
		return enc.WriteToken(jsontext.Int(n.i))
	case KindUint:
		return enc.WriteToken(jsontext.Uint(n.u))
	case KindFloat:
		return enc.WriteToken(jsontext.Float(n.f))
	case KindString:
		return enc.WriteToken(jsontext.String(n.s))
	case KindArray:
		if err := enc.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for _, item := range n.arr {
			if err := encodeValue(enc, item); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndArray)
	case KindObject:
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for _, m := range n.obj.Members() {
			if err := enc.WriteToken(jsontext.String(m.Key)); err != nil {
				return err
			}
			if err := encodeValue(enc, m.Value); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndObject)
	default:
		return fmt.Errorf("document: unknown kind %v", n.kind)
	}
}
