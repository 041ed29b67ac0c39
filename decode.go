package differ

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// ParseJSON decodes a JSON document into a Value
func ParseJSON(data []byte) (Value, error) {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return Value{}, fmt.Errorf("decoding json: %w", err)
	}
	return FromInterface(v), nil
}

// ParseYAML decodes a single YAML document into a Value. mappings with
// non-string keys have their keys stringified
func ParseYAML(data []byte) (Value, error) {
	var v interface{}
	if err := yaml.Unmarshal(data, &v); err != nil {
		return Value{}, fmt.Errorf("decoding yaml: %w", err)
	}
	return FromInterface(v), nil
}

// ParseMsgpack decodes a MessagePack encoded document into a Value
func ParseMsgpack(data []byte) (Value, error) {
	var v interface{}
	if err := msgpack.Unmarshal(data, &v); err != nil {
		return Value{}, fmt.Errorf("decoding msgpack: %w", err)
	}
	return FromInterface(v), nil
}
