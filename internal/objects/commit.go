package objects

import (
	"bytes"
	"fmt"
	"time"

	"github.com/KostasZigo/gogitodb/internal/constants"
	"github.com/KostasZigo/gogitodb/utils"
)

// Author identifies the person behind a commit or tag.
type Author struct {
	Name      string
	Email     string
	Timestamp time.Time
}

func (a Author) String() string {
	return fmt.Sprintf("%s <%s>", a.Name, a.Email)
}

// signatureLine renders "<prefix><name> <email> <unix> <tz>\n" as used by
// author, committer and tagger lines.
func (a Author) signatureLine(prefix string) string {
	_, offset := a.Timestamp.Zone()
	return fmt.Sprintf("%s%s %d %s\n", prefix, a.String(), a.Timestamp.Unix(), calculateTimezone(offset))
}

// Commit is a snapshot of the repository. Graph traversal is out of scope,
// commits exist here so typed objects can be written for lookups.
type Commit struct {
	hash       string
	treeHash   string
	parentHash string
	author     Author
	committer  Author
	message    string
}

func NewCommit(treeHash, parentHash, message string, author Author) (*Commit, error) {
	commit := &Commit{
		treeHash:   treeHash,
		parentHash: parentHash,
		author:     author,
		committer:  author,
		message:    message,
	}

	hash, err := utils.ComputeHash(commit.Content(), utils.CommitObjectType)
	if err != nil {
		return nil, fmt.Errorf("failed to compute hash for commit: %w", err)
	}
	commit.hash = hash

	return commit, nil
}

func NewInitialCommit(treeHash, message string, author Author) (*Commit, error) {
	return NewCommit(treeHash, "", message, author)
}

func (c *Commit) Content() []byte {
	var buf bytes.Buffer

	buf.WriteString(constants.TreePrefix + c.treeHash + "\n")
	if c.parentHash != "" {
		buf.WriteString(constants.CommitParentPrefix + c.parentHash + "\n")
	}
	buf.WriteString(c.author.signatureLine(constants.CommitAuthorPrefix))
	buf.WriteString(c.committer.signatureLine(constants.CommitCommitterPrefix))

	buf.WriteByte('\n')
	writeMessage(&buf, c.message)

	return buf.Bytes()
}

// writeMessage appends message, terminating it with a newline when missing.
func writeMessage(buf *bytes.Buffer, message string) {
	buf.WriteString(message)
	if len(message) > 0 && message[len(message)-1] != '\n' {
		buf.WriteByte('\n')
	}
}

// calculateTimezone converts an offset in seconds to git's ±HHMM form.
func calculateTimezone(offset int) string {
	hours := offset / constants.SecondsPerHour
	minutes := (offset % constants.SecondsPerHour) / constants.SecondsPerMinute

	if minutes < 0 {
		minutes = -minutes
	}

	return fmt.Sprintf("%+03d%02d", hours, minutes)
}

func (c *Commit) Hash() string {
	return c.hash
}

func (c *Commit) Size() int {
	return len(c.Content())
}

func (c *Commit) Type() utils.ObjectType {
	return utils.CommitObjectType
}

func (c *Commit) Header() string {
	return utils.BuildHeader(utils.CommitObjectType, c.Size())
}

func (c *Commit) Data() []byte {
	return append([]byte(c.Header()), c.Content()...)
}

func (c *Commit) IsInitialCommit() bool {
	return c.parentHash == ""
}

func (c *Commit) String() string {
	return fmt.Sprintf("Commit{hash: %s, tree: %s, parent: %s, author: %s, message: %q}",
		c.hash, c.treeHash, c.parentHash, c.author.String(), c.message)
}
