package objects

import (
	"bytes"
	"fmt"

	"github.com/KostasZigo/gogitodb/internal/constants"
	"github.com/KostasZigo/gogitodb/utils"
)

// Tag is an annotated tag pointing at another object.
type Tag struct {
	hash       string
	objectHash string
	objectType utils.ObjectType
	name       string
	tagger     Author
	message    string
}

func NewTag(objectHash string, objectType utils.ObjectType, name, message string, tagger Author) (*Tag, error) {
	if !objectType.IsValid() {
		return nil, fmt.Errorf("cannot tag object %s: %w %q", objectHash, ErrUnknownType, objectType)
	}
	if name == "" {
		return nil, fmt.Errorf("cannot tag object %s: empty tag name", objectHash)
	}

	tag := &Tag{
		objectHash: objectHash,
		objectType: objectType,
		name:       name,
		tagger:     tagger,
		message:    message,
	}

	hash, err := utils.ComputeHash(tag.Content(), utils.TagObjectType)
	if err != nil {
		return nil, fmt.Errorf("failed to compute hash for tag: %w", err)
	}
	tag.hash = hash

	return tag, nil
}

// Content renders the tag body:
//
//	object <hash>
//	type <kind>
//	tag <name>
//	tagger <name> <email> <unix> <tz>
//
//	<message>
func (t *Tag) Content() []byte {
	var buf bytes.Buffer

	buf.WriteString(constants.TagObjectPrefix + t.objectHash + "\n")
	buf.WriteString(constants.TagTypePrefix + t.objectType.String() + "\n")
	buf.WriteString(constants.TagNamePrefix + t.name + "\n")
	buf.WriteString(t.tagger.signatureLine(constants.TagTaggerPrefix))

	buf.WriteByte('\n')
	writeMessage(&buf, t.message)

	return buf.Bytes()
}

func (t *Tag) Hash() string {
	return t.hash
}

func (t *Tag) Type() utils.ObjectType {
	return utils.TagObjectType
}

func (t *Tag) Name() string {
	return t.name
}

func (t *Tag) Target() string {
	return t.objectHash
}

func (t *Tag) Data() []byte {
	content := t.Content()
	return append([]byte(utils.BuildHeader(utils.TagObjectType, len(content))), content...)
}

func (t *Tag) String() string {
	return fmt.Sprintf("Tag{hash: %s, name: %s, object: %s %s}", t.hash, t.name, t.objectType, t.objectHash)
}
