package utils

import (
	"crypto/sha1"
	"fmt"
	"path/filepath"
	"strings"
)

type ObjectType string

const (
	BlobObjectType   ObjectType = "blob"
	TreeObjectType   ObjectType = "tree"
	CommitObjectType ObjectType = "commit"
	TagObjectType    ObjectType = "tag"

	// AnyObjectType never appears in stored objects, it only widens lookups.
	AnyObjectType ObjectType = "any"
)

// IsValid reports whether ot is one of the four storable object kinds.
func (ot ObjectType) IsValid() bool {
	switch ot {
	case BlobObjectType, TreeObjectType, CommitObjectType, TagObjectType:
		return true
	default:
		return false
	}
}

// Matches reports whether an object of kind ot satisfies a lookup for want.
func (ot ObjectType) Matches(want ObjectType) bool {
	return want == AnyObjectType || ot == want
}

func (ot ObjectType) String() string {
	return string(ot)
}

// ParseObjectType converts a header type word into an ObjectType.
func ParseObjectType(word string) (ObjectType, error) {
	ot := ObjectType(word)
	if !ot.IsValid() {
		return "", fmt.Errorf("invalid object type: %q", word)
	}
	return ot, nil
}

// BuildHeader returns the object header "<type> <size>\0".
func BuildHeader(objectType ObjectType, size int) string {
	return fmt.Sprintf("%v %d\x00", objectType, size)
}

// ComputeHash calculates SHA-1 hash for Object content
func ComputeHash(content []byte, objectType ObjectType) (string, error) {
	sum, err := ComputeDigest(content, objectType)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", sum), nil
}

// ComputeDigest is ComputeHash without the hex encoding.
func ComputeDigest(content []byte, objectType ObjectType) ([sha1.Size]byte, error) {
	if !objectType.IsValid() {
		return [sha1.Size]byte{}, fmt.Errorf("invalid object type: %s - hash not computed", objectType)
	}

	// format: "ObjectType <size>\0<content>"
	h := sha1.New()
	h.Write([]byte(BuildHeader(objectType, len(content))))
	h.Write(content)

	var sum [sha1.Size]byte
	copy(sum[:], h.Sum(nil))
	return sum, nil
}

// BuildDirPath constructs os-agnostic display direcotry path with trailing separator preserving all components.
// Unlike filepath.Join, does not normalize "." or remove redundant separators.
func BuildDirPath(dirs ...string) string {
	return strings.Join(dirs, string(filepath.Separator)) + string(filepath.Separator)
}
