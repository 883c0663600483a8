// Package bridge exposes the counter models across the foreign boundary.
// Consumers in other languages hold opaque handles to live models, invoke
// operations by method name with encoded payloads, and receive state
// snapshots through a registered sink, one per effective mutation.
package bridge

import (
	"encoding/json"
	"errors"
)

// MessageCodec encodes and decodes payloads crossing the boundary.
type MessageCodec interface {
	// Encode converts a Go value to bytes for transmission to the
	// foreign side.
	Encode(value any) ([]byte, error)

	// Decode converts bytes received from the foreign side to a Go
	// value.
	Decode(data []byte) (any, error)
}

// JsonCodec implements MessageCodec using JSON encoding.
// JSON prioritizes interoperability and minimal foreign dependencies.
type JsonCodec struct{}

// Encode serializes the value to JSON bytes.
func (c JsonCodec) Encode(value any) ([]byte, error) {
	return json.Marshal(value)
}

// Decode deserializes JSON bytes to a Go value.
func (c JsonCodec) Decode(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var result any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// DecodeInto deserializes JSON bytes into a specific type.
func (c JsonCodec) DecodeInto(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// DefaultCodec is the codec used by new registries.
var DefaultCodec MessageCodec = JsonCodec{}

// Standard errors for boundary operations.
var (
	// ErrHandleNotFound indicates the handle does not refer to a live
	// model.
	ErrHandleNotFound = errors.New("model handle not found")

	// ErrMethodNotFound indicates the method is not implemented for the
	// handle's model type.
	ErrMethodNotFound = errors.New("method not implemented")

	// ErrInvalidArguments indicates the arguments passed to the method
	// could not be decoded.
	ErrInvalidArguments = errors.New("invalid arguments")
)

// ChannelError is the error envelope delivered to the foreign side.
type ChannelError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func (e *ChannelError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

// NewChannelError creates a new ChannelError with the given code and message.
func NewChannelError(code, message string) *ChannelError {
	return &ChannelError{Code: code, Message: message}
}
