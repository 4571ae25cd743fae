// Package features turns a raw JSON request object into the fixed feature
// record the predictor consumes.
package features

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"housepriced/pkg/types"
)

// Names lists the required features in declaration order.
var Names = []string{"MedInc", "HouseAge", "AveRooms", "AveBedrms", "Population", "AveOccup"}

// IsKnown reports whether name is one of Names.
func IsKnown(name string) bool {
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return false
}

// ParseObject decodes body as exactly one JSON object. Values are kept raw so
// that extraction can report per-field problems.
func ParseObject(body []byte) (map[string]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, &ParseError{Msg: "request body is empty"}
	}
	if trimmed[0] != '{' {
		return nil, &ParseError{Msg: "request body must be a JSON object"}
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	var obj map[string]json.RawMessage
	if err := dec.Decode(&obj); err != nil {
		return nil, &ParseError{Msg: "invalid JSON body", Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &ParseError{Msg: "invalid JSON body: unexpected data after object"}
	}
	return obj, nil
}

// Extract builds a FeatureRecord field by field from obj. Keys outside Names
// are ignored. All missing fields are reported together; otherwise the first
// non-numeric value, in declaration order, is reported.
func Extract(obj map[string]json.RawMessage) (types.FeatureRecord, error) {
	var rec types.FeatureRecord
	var missing []string
	for _, name := range Names {
		if _, ok := obj[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return rec, &MissingFieldError{Fields: missing}
	}
	dst := []*float64{&rec.MedInc, &rec.HouseAge, &rec.AveRooms, &rec.AveBedrms, &rec.Population, &rec.AveOccup}
	for i, name := range Names {
		v, err := number(obj[name])
		if err != nil {
			return types.FeatureRecord{}, &InvalidFieldError{Field: name, Err: err}
		}
		*dst[i] = v
	}
	return rec, nil
}

// number decodes a raw JSON number. null is rejected even though
// encoding/json would leave the destination untouched.
func number(raw json.RawMessage) (float64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, errors.New("got null")
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, err
	}
	return v, nil
}
