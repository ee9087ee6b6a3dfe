package core

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Codec defines how the note collection is laid out as a single store value.
// Implementations must round-trip all Note fields losslessly, timestamps as integers.
type Codec interface {
	Name() string
	Encode(notes []Note) ([]byte, error)
	Decode(data []byte) ([]Note, error)
}

// CodecByName returns one of the built-in codecs ("json" or "yaml").
// An empty name selects JSON.
func CodecByName(name string) (Codec, error) {
	switch name {
	case "", "json":
		return JSONCodec{}, nil
	case "yaml", "yml":
		return YAMLCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown codec: %s", name)
	}
}

// JSONCodec stores the collection as a JSON array.
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Encode(notes []Note) ([]byte, error) {
	if notes == nil {
		notes = []Note{}
	}
	return json.Marshal(notes)
}

func (JSONCodec) Decode(data []byte) ([]Note, error) {
	var notes []Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	return notes, nil
}

// YAMLCodec stores the collection as a YAML sequence.
type YAMLCodec struct{}

func (YAMLCodec) Name() string { return "yaml" }

func (YAMLCodec) Encode(notes []Note) ([]byte, error) {
	if notes == nil {
		notes = []Note{}
	}
	return yaml.Marshal(notes)
}

func (YAMLCodec) Decode(data []byte) ([]Note, error) {
	var notes []Note
	if err := yaml.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	return notes, nil
}
