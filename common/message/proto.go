// Package message wraps protobuf marshalling for the generated message types.
package message

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/proto"
)

var ErrMalformed = errors.New("message: malformed wire data")

func Encode(msg proto.Message) ([]byte, error) {
	data, err := proto.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("message: encode %s: %w", msg.ProtoReflect().Descriptor().FullName(), err)
	}
	return data, nil
}

// Decode fills msg from data. Any wire error is reported as ErrMalformed.
func Decode(data []byte, msg proto.Message) error {
	if err := proto.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, msg.ProtoReflect().Descriptor().FullName(), err)
	}
	return nil
}
