// Package codec encodes exported graphs to bytes and back. Three formats
// are supported: JSON for interchange, YAML for hand-edited fixtures,
// MessagePack for compact binary payloads.
//
// The codec layer owns no graph semantics: it round-trips
// core.SerializedGraph descriptors, and the Marshal/Unmarshal helpers
// compose that with core's Export/Import, so every decoded edge still
// passes the full validated add path.
package codec

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gravel/core"
)

// Format names a supported byte encoding.
type Format int

const (
	// JSON is encoding/json with the descriptors' json tags.
	JSON Format = iota
	// YAML is gopkg.in/yaml.v3.
	YAML
	// MsgPack is vmihailenco/msgpack/v5.
	MsgPack
)

// String returns the canonical lower-case format name.
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case MsgPack:
		return "msgpack"
	}
	return "unknown"
}

// ErrUnknownFormat indicates a Format value outside the supported set.
var ErrUnknownFormat = fmt.Errorf("%w: unknown codec format", core.ErrInvalidArgument)

// Encode serializes s in the given format.
func Encode(s *core.SerializedGraph, f Format) ([]byte, error) {
	switch f {
	case JSON:
		return json.Marshal(s)
	case YAML:
		return yaml.Marshal(s)
	case MsgPack:
		return msgpack.Marshal(s)
	}
	return nil, ErrUnknownFormat
}

// Decode parses data in the given format into a descriptor set.
// No graph-level validation happens here; feed the result to
// core.Graph.Import (or use Unmarshal) to enforce the add-path checks.
func Decode(data []byte, f Format) (*core.SerializedGraph, error) {
	s := new(core.SerializedGraph)
	var err error
	switch f {
	case JSON:
		err = json.Unmarshal(data, s)
	case YAML:
		err = yaml.Unmarshal(data, s)
	case MsgPack:
		err = msgpack.Unmarshal(data, s)
	default:
		return nil, ErrUnknownFormat
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Marshal exports g and encodes it in the given format.
func Marshal(g *core.Graph, f Format) ([]byte, error) {
	return Encode(g.Export(), f)
}

// Unmarshal decodes data and builds a fresh graph configured from the
// payload's options, replaying its contents through the validated adds.
func Unmarshal(data []byte, f Format) (*core.Graph, error) {
	s, err := Decode(data, f)
	if err != nil {
		return nil, err
	}
	return core.FromSerialized(s)
}
