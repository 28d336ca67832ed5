package objects

import (
	"fmt"

	"github.com/KostasZigo/gogitodb/utils"
)

// Object represents any GoGit object that can be stored
// All GoGit objects (blobs, trees, commits, tags) must implement this interface
type Object interface {
	// Hash returns the SHA-1 hash of the object
	Hash() string

	// Type returns the kind written into the object header
	Type() utils.ObjectType

	// Data returns the complete object data including header
	// Format: "<type> <size>\0<content>"
	Data() []byte
}

// RawObject is an object of any kind built from already serialized content.
// hash-object -t uses it to store content whose structure it does not check.
type RawObject struct {
	objectType utils.ObjectType
	content    []byte
	hash       string
}

func NewRawObject(objectType utils.ObjectType, content []byte) (*RawObject, error) {
	hash, err := utils.ComputeHash(content, objectType)
	if err != nil {
		return nil, err
	}
	return &RawObject{
		objectType: objectType,
		content:    content,
		hash:       hash,
	}, nil
}

func (r *RawObject) Hash() string {
	return r.hash
}

func (r *RawObject) Type() utils.ObjectType {
	return r.objectType
}

func (r *RawObject) Content() []byte {
	return r.content
}

func (r *RawObject) Data() []byte {
	return append([]byte(utils.BuildHeader(r.objectType, len(r.content))), r.content...)
}

func (r *RawObject) String() string {
	return fmt.Sprintf("RawObject{type: %s, hash: %s, size: %d bytes}", r.objectType, r.hash, len(r.content))
}
