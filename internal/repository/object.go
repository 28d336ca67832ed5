package repository

import (
	"bytes"
	"fmt"

	"github.com/KostasZigo/gogitodb/internal/objects"
	"github.com/KostasZigo/gogitodb/utils"
)

// Object is an immutable object read from a Repository. It owns a copy of
// its content and keeps a reference to its repository for ReadRaw only.
type Object struct {
	id         objects.ID
	objectType utils.ObjectType
	data       []byte
	repo       *Repository
}

// wrapObject tags raw store output with one of the four object kinds.
func wrapObject(repo *Repository, id objects.ID, objectType utils.ObjectType, data []byte) (*Object, error) {
	switch objectType {
	case utils.CommitObjectType,
		utils.TreeObjectType,
		utils.BlobObjectType,
		utils.TagObjectType:
	default:
		return nil, fmt.Errorf("%w %q for object %s", objects.ErrUnknownType, objectType, id)
	}

	return &Object{
		id:         id,
		objectType: objectType,
		data:       bytes.Clone(data),
		repo:       repo,
	}, nil
}

func (o *Object) ID() objects.ID {
	return o.id
}

// Hash returns the 40 character hex identifier.
func (o *Object) Hash() string {
	return o.id.String()
}

func (o *Object) Type() utils.ObjectType {
	return o.objectType
}

func (o *Object) Size() int {
	return len(o.data)
}

// Data returns a copy of the content captured when the object was read.
func (o *Object) Data() []byte {
	return bytes.Clone(o.data)
}

// ReadRaw reads the content again through the originating repository.
// It fails with ErrHandleClosed once that repository is closed.
func (o *Object) ReadRaw() ([]byte, error) {
	return o.repo.readRaw(o.id)
}

func (o *Object) IsCommit() bool { return o.objectType == utils.CommitObjectType }
func (o *Object) IsTree() bool   { return o.objectType == utils.TreeObjectType }
func (o *Object) IsBlob() bool   { return o.objectType == utils.BlobObjectType }
func (o *Object) IsTag() bool    { return o.objectType == utils.TagObjectType }

func (o *Object) String() string {
	return fmt.Sprintf("Object{hash: %s, type: %s, size: %d bytes}", o.id, o.objectType, len(o.data))
}
