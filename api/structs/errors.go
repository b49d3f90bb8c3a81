package structs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

var errNilValue = errors.New("nil value")

// DecodeError represents an error resulting from trying to decode a JSON value.
// It tracks the full field name for which decoding failed.
type DecodeError struct {
	path []string
	err  error
}

// NewDecodeError wraps an error (either the initial decoding error or another DecodeError).
// The current field that failed decoding must be passed in.
func NewDecodeError(err error, field string) *DecodeError {
	de, ok := err.(*DecodeError)
	if ok {
		return &DecodeError{path: append([]string{field}, de.path...), err: de.err}
	}
	return &DecodeError{path: []string{field}, err: err}
}

// Error returns the formatted error message which contains the full field name and the actual decoding error.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("could not decode %s: %s", strings.Join(e.path, "."), e.err.Error())
}

// Unwrap returns the underlying decoding error.
func (e *DecodeError) Unwrap() error {
	return e.err
}

// Field returns the dotted path of the field that failed to decode.
func (e *DecodeError) Field() string {
	return strings.Join(e.path, ".")
}

// DecodeHexWithLength decodes a 0x prefixed hex string that must hold exactly length bytes.
func DecodeHexWithLength(s string, length int) ([]byte, error) {
	bytes, err := hexutil.Decode(s)
	if err != nil {
		return nil, errors.Wrapf(err, "%s is not a valid hex", s)
	}
	if len(bytes) != length {
		return nil, fmt.Errorf("%s is not length %d bytes", s, length)
	}
	return bytes, nil
}

func decodeRoot(s string) ([32]byte, error) {
	var r [32]byte
	b, err := DecodeHexWithLength(s, len(r))
	if err != nil {
		return r, err
	}
	copy(r[:], b)
	return r, nil
}

func decodeUint(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

func decodeHexList(list []string) ([][]byte, error) {
	out := make([][]byte, len(list))
	for i, s := range list {
		b, err := hexutil.Decode(s)
		if err != nil {
			return nil, NewDecodeError(errors.Wrapf(err, "%s is not a valid hex", s), strconv.Itoa(i))
		}
		out[i] = b
	}
	return out, nil
}
