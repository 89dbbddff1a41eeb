// Package encoding offers (de)serialization APIs for algebra values.
// It uses CBOR and prefixes every stream with a format version so a reader
// can reject bytes written by an incompatible release.
package encoding

import (
	"errors"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
)

// Version is the wire format version written ahead of every value.
const Version uint32 = 1

var errInvalidVersion = errors.New("trying to deserialize an object serialized with another format version")

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("encoding: cbor encode mode: " + err.Error())
	}
}

// Write serializes object into a file at path.
func Write(path string, from interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Serialize(f, from)
}

// Read reads and deserializes a file into the provided object.
// into must be a pointer, typically a context decode entry point's wire
// carrier or a type implementing cbor.Unmarshaler.
func Read(path string, into interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Deserialize(f, into)
}

// ReadBytes reads a file and returns the raw value bytes after the version
// header, for routing through a context-qualified DecodeElem.
func ReadBytes(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	decoder := cbor.NewDecoder(f)
	var version uint32
	if err := decoder.Decode(&version); err != nil {
		return nil, err
	}
	if version != Version {
		return nil, errInvalidVersion
	}
	var raw cbor.RawMessage
	if err := decoder.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Serialize writes the version header followed by the object into writer.
func Serialize(writer io.Writer, from interface{}) error {
	encoder := encMode.NewEncoder(writer)

	if err := encoder.Encode(Version); err != nil {
		return err
	}

	return encoder.Encode(from)
}

// PeekVersion reads the first bytes of the file and returns the format
// version they declare.
func PeekVersion(file string) (uint32, error) {
	reader, err := os.Open(file)
	if err != nil {
		return 0, err
	}
	defer reader.Close()

	decoder := cbor.NewDecoder(reader)

	var version uint32
	if err = decoder.Decode(&version); err != nil {
		return 0, err
	}
	return version, nil
}

// Deserialize reads bytes from reader and reconstructs the object into,
// after checking the version header.
func Deserialize(reader io.Reader, into interface{}) error {
	decoder := cbor.NewDecoder(reader)

	var version uint32
	if err := decoder.Decode(&version); err != nil {
		return err
	}
	if version != Version {
		return errInvalidVersion
	}

	return decoder.Decode(into)
}
