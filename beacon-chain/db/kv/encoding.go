package kv

import (
	"reflect"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
)

type sszMarshaler interface {
	MarshalSSZ() ([]byte, error)
}

type sszUnmarshaler interface {
	UnmarshalSSZ(buf []byte) error
}

func decode(data []byte, dst sszUnmarshaler) error {
	data, err := snappy.Decode(nil, data)
	if err != nil {
		return errors.Wrap(err, "could not snappy decode value")
	}
	return dst.UnmarshalSSZ(data)
}

func encode(msg sszMarshaler) ([]byte, error) {
	if msg == nil || reflect.ValueOf(msg).IsNil() {
		return nil, errors.New("cannot encode nil message")
	}
	enc, err := msg.MarshalSSZ()
	if err != nil {
		return nil, err
	}
	return snappy.Encode(nil, enc), nil
}
