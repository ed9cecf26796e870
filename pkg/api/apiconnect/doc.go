// Package apiconnect wires the finapi messages to Connect handlers and
// clients. Every handler and client speaks the Connect protocol with
// api.JSONCodec.
package apiconnect

import (
	"connectrpc.com/connect"

	"github.com/mmynk/finapi/pkg/api"
)

// handlerCodecs accepts both application/json content types. They come first
// so caller options can still override them.
func handlerCodecs(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{
		connect.WithCodec(api.NewJSONCodec(api.CodecNameJSON)),
		connect.WithCodec(api.NewJSONCodec(api.CodecNameJSONCharsetUTF8)),
	}, opts...)
}

// clientCodecs makes clients send application/json.
func clientCodecs(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{
		connect.WithCodec(api.NewJSONCodec(api.CodecNameJSON)),
	}, opts...)
}
