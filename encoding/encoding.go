/*
Copyright © 2025 Consensys Software Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package encoding offers (de)serialization APIs for bigint values.
//
// It uses CBOR. Every stream starts with a small header carrying the library
// version, the integer width in bits and the payload representation; decoding
// a stream of a different width or an incompatible major version fails before
// any value is produced.
package encoding

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/blang/semver/v4"
	"github.com/fxamacker/cbor/v2"

	"github.com/consensys/bigint"
)

// Mode selects the wire representation of the integer payload.
type Mode uint8

const (
	// Binary is the compact representation: the big-endian byte array.
	Binary Mode = iota
	// Hex is the textual representation: lower-case hex digits.
	Hex
)

var (
	// ErrWidthMismatch is returned when deserializing into a value whose
	// width differs from the one recorded in the stream.
	ErrWidthMismatch = errors.New("trying to deserialize a value of a different width")

	// ErrVersionMismatch is returned when the stream was produced by a
	// different major version of the library.
	ErrVersionMismatch = errors.New("stream produced by an incompatible library version")

	errUnknownMode = errors.New("unknown serialization mode")
)

// header is encoded in the first bytes of every stream.
type header struct {
	Version string `cbor:"1,keyasint"`
	Bits    int    `cbor:"2,keyasint"`
	Mode    Mode   `cbor:"3,keyasint"`
}

func encMode() (cbor.EncMode, error) {
	return cbor.CanonicalEncOptions().EncMode()
}

// Write serializes value into a file at path.
func Write(path string, from bigint.Serializable, mode Mode) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Serialize(f, from, mode)
}

// Read reads and deserializes the file at path into the provided value.
func Read(path string, into bigint.Serializable) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Deserialize(f, into)
}

// Serialize writes the header then the payload of from into writer, using the
// representation selected by mode.
func Serialize(writer io.Writer, from bigint.Serializable, mode Mode) error {
	em, err := encMode()
	if err != nil {
		return err
	}
	encoder := em.NewEncoder(writer)

	h := header{Version: bigint.Version.String(), Bits: from.Bits(), Mode: mode}
	if err := encoder.Encode(h); err != nil {
		return err
	}

	var payload []byte
	switch mode {
	case Binary:
		payload, err = from.MarshalBinary()
	case Hex:
		payload, err = from.MarshalText()
	default:
		return errUnknownMode
	}
	if err != nil {
		return err
	}
	return encoder.Encode(payload)
}

// PeekWidth reads the header of the file at path and returns the recorded
// width in bits.
func PeekWidth(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var h header
	if err := cbor.NewDecoder(f).Decode(&h); err != nil {
		return 0, err
	}
	return h.Bits, nil
}

// Deserialize reads a stream produced by Serialize into the provided value,
// enforcing the width and major-version guards.
func Deserialize(reader io.Reader, into bigint.Serializable) error {
	decoder := cbor.NewDecoder(reader)

	var h header
	if err := decoder.Decode(&h); err != nil {
		return err
	}
	v, err := semver.Parse(h.Version)
	if err != nil {
		return fmt.Errorf("parsing stream version: %w", err)
	}
	if v.Major != bigint.Version.Major {
		return ErrVersionMismatch
	}
	if h.Bits != into.Bits() {
		return ErrWidthMismatch
	}

	var payload []byte
	if err := decoder.Decode(&payload); err != nil {
		return err
	}
	switch h.Mode {
	case Binary:
		return into.UnmarshalBinary(payload)
	case Hex:
		return into.UnmarshalText(payload)
	}
	return errUnknownMode
}
