package api

import (
	"encoding/json"
	"fmt"
)

// Codec names Connect derives from the application/json content types.
const (
	CodecNameJSON            = "json"
	CodecNameJSONCharsetUTF8 = CodecNameJSON + "; charset=utf-8"
)

// JSONCodec marshals the plain Go messages in this package for Connect.
// Registered under CodecNameJSON and CodecNameJSONCharsetUTF8 it replaces
// Connect's protobuf-only JSON codecs for the finapi services. The zero value
// uses CodecNameJSON.
type JSONCodec struct {
	name string
}

// NewJSONCodec returns a JSONCodec registered under name.
func NewJSONCodec(name string) JSONCodec {
	return JSONCodec{name: name}
}

// Name implements connect.Codec.
func (c JSONCodec) Name() string {
	if c.name == "" {
		return CodecNameJSON
	}
	return c.name
}

// Marshal implements connect.Codec.
func (JSONCodec) Marshal(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", msg, err)
	}
	return data, nil
}

// Unmarshal implements connect.Codec. An empty body decodes to the zero message.
func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("unmarshal %T: %w", msg, err)
	}
	return nil
}
