package objects

import (
	"encoding/hex"
	"fmt"

	"github.com/KostasZigo/gogitodb/internal/constants"
	"github.com/KostasZigo/gogitodb/utils"
)

// ID is the binary SHA-1 identifier of an object.
type ID [constants.HashByteLength]byte

// ZeroID is well formed but never names a stored object.
var ZeroID ID

// ParseID converts a 40 character hex string into an ID.
// Input is validated completely before anything touches the store,
// abbreviated identifiers are rejected.
func ParseID(s string) (ID, error) {
	var id ID
	if len(s) != constants.HashStringLength {
		return id, fmt.Errorf("%w %q: expected %d hex characters, got %d",
			ErrInvalidIdentifier, s, constants.HashStringLength, len(s))
	}
	if _, err := hex.Decode(id[:], []byte(s)); err != nil {
		return ZeroID, fmt.Errorf("%w %q: %v", ErrInvalidIdentifier, s, err)
	}
	return id, nil
}

// MustParseID is ParseID for constants, it panics on malformed input.
func MustParseID(s string) ID {
	id, err := ParseID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// HashObject computes the identifier of content stored as the given type.
func HashObject(objectType utils.ObjectType, content []byte) (ID, error) {
	sum, err := utils.ComputeDigest(content, objectType)
	if err != nil {
		return ZeroID, err
	}
	return ID(sum), nil
}

func (id ID) String() string {
	return hex.EncodeToString(id[:])
}

func (id ID) IsZero() bool {
	return id == ZeroID
}

// dir and file split the hex form into the loose object path ab/cdef...
func (id ID) dir() string {
	return id.String()[:constants.HashDirPrefixLength]
}

func (id ID) file() string {
	return id.String()[constants.HashDirPrefixLength:]
}
