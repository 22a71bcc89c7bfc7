package mapdef

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/mlenz/regionmap/pkg/errors"
	"github.com/mlenz/regionmap/pkg/region"
)

// Value maps cross process boundaries as plain JSON objects mapping region
// ids to counts, e.g. {"by": 2, "sh": 1}.

// ReadValues decodes a JSON value map from a reader.
// The result is normalized: zero and negative counts are dropped.
func ReadValues(r io.Reader) (region.ValueMap, error) {
	var v region.ValueMap
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidValues, err, "decode value map")
	}
	return v.Clone(), nil
}

// ReadValuesFile reads a JSON value map from a file.
func ReadValuesFile(path string) (region.ValueMap, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "values file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidValues, err, "open %s", path)
	}
	defer f.Close()
	return ReadValues(f)
}

// MarshalValues encodes a value map as indented JSON bytes.
func MarshalValues(v region.ValueMap) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteValues(v.Clone(), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteValues writes a value map as JSON to a writer.
func WriteValues(v region.ValueMap, w io.Writer) error {
	if v == nil {
		v = region.ValueMap{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode value map")
	}
	return nil
}
