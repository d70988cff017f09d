package avro

import (
	"fmt"

	"github.com/linkedin/goavro/v2"
)

// Codec wraps a goavro codec. goavro codecs are safe for concurrent use.
type Codec struct {
	codec *goavro.Codec
}

// NewCodec creates a codec from an Avro schema string
func NewCodec(schema string) (*Codec, error) {
	codec, err := goavro.NewCodec(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to create avro codec: %w", err)
	}
	return &Codec{codec: codec}, nil
}

// EncodeNative converts a goavro native map to Avro binary format
func (c *Codec) EncodeNative(native map[string]interface{}) ([]byte, error) {
	binary, err := c.codec.BinaryFromNative(nil, native)
	if err != nil {
		return nil, fmt.Errorf("failed to encode to avro binary: %w", err)
	}
	return binary, nil
}

// DecodeNative is the inverse of EncodeNative. Trailing bytes are an error.
func (c *Codec) DecodeNative(binary []byte) (map[string]interface{}, error) {
	native, rest, err := c.codec.NativeFromBinary(binary)
	if err != nil {
		return nil, fmt.Errorf("failed to decode avro binary: %w", err)
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("failed to decode avro binary: %d trailing bytes", len(rest))
	}
	record, ok := native.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("avro value is %T, want record", native)
	}
	return record, nil
}
