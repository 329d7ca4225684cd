package model

import (
	"bytes"
	"encoding/json"
	"errors"
)

// AnswerKind tags how an answer payload is stored. Structured payloads
// (objects and arrays) are kept as compact JSON text; everything else is a
// scalar stored in its literal form. The tag travels with the row so decoding
// never has to sniff the text.
type AnswerKind string

const (
	AnswerKindScalar     AnswerKind = "scalar"
	AnswerKindStructured AnswerKind = "structured"
)

var ErrMalformedAnswer = errors.New("malformed answer payload")

// AnswerValue is the tagged union an answer passes through at the persistence
// boundary.
type AnswerValue struct {
	Kind AnswerKind
	Text string
}

// EncodeAnswer converts a raw JSON answer into its stored form.
// Objects and arrays are compacted (key order preserved, so decoding returns
// the exact original value); JSON strings are unquoted; numbers, booleans and
// null keep their literal text.
func EncodeAnswer(raw json.RawMessage) (AnswerValue, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return AnswerValue{Kind: AnswerKindScalar, Text: ""}, nil
	}

	switch trimmed[0] {
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, trimmed); err != nil {
			return AnswerValue{}, ErrMalformedAnswer
		}
		return AnswerValue{Kind: AnswerKindStructured, Text: buf.String()}, nil
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return AnswerValue{}, ErrMalformedAnswer
		}
		return AnswerValue{Kind: AnswerKindScalar, Text: s}, nil
	default:
		if !json.Valid(trimmed) {
			return AnswerValue{}, ErrMalformedAnswer
		}
		return AnswerValue{Kind: AnswerKindScalar, Text: string(trimmed)}, nil
	}
}

// JSON renders the stored value back as a JSON document. For structured
// answers this is the exact payload that was submitted.
func (v AnswerValue) JSON() (json.RawMessage, error) {
	if v.Kind == AnswerKindStructured {
		if !json.Valid([]byte(v.Text)) {
			return nil, ErrMalformedAnswer
		}
		return json.RawMessage(v.Text), nil
	}
	return json.Marshal(v.Text)
}
