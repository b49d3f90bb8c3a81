package common

import "github.com/pkg/errors"

// ErrZeroKey describes an error due to a zero secret key.
var ErrZeroKey = errors.New("received secret key is zero")

// ErrInfinitePubKey describes an error due to an infinite public key.
var ErrInfinitePubKey = errors.New("received an infinite public key")

// ErrInvalidSignature describes signature bytes that do not decode to a group element.
var ErrInvalidSignature = errors.New("could not unmarshal bytes into signature")
