package objects

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/KostasZigo/gogitodb/utils"
)

type FileMode string

const (
	ModeRegularFile FileMode = "100644" // Regular non-executable file
	ModeExecutable  FileMode = "100755" // Executable file
	ModeSymlink     FileMode = "120000" // Symbolic link
	ModeDirectory   FileMode = "040000" // Directory (tree)
	ModeSubmodule   FileMode = "160000" // Git submodule
)

func (m FileMode) IsValid() bool {
	switch m {
	case ModeRegularFile, ModeExecutable, ModeSymlink, ModeDirectory, ModeSubmodule:
		return true
	default:
		return false
	}
}

// TreeEntry represents a single entry in a tree object
type TreeEntry struct {
	mode FileMode
	name string
	id   ID
}

// NewTreeEntry validates mode, name and the hex hash of the referenced object.
func NewTreeEntry(mode FileMode, name string, hash string) (*TreeEntry, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("invalid file mode: %s", mode)
	}
	if name == "" || strings.ContainsAny(name, "/\x00") {
		return nil, fmt.Errorf("invalid tree entry name: %q", name)
	}
	id, err := ParseID(hash)
	if err != nil {
		return nil, fmt.Errorf("tree entry %s: %w", name, err)
	}
	return &TreeEntry{
		mode: mode,
		name: name,
		id:   id,
	}, nil
}

func (e *TreeEntry) Mode() FileMode {
	return e.mode
}

func (e *TreeEntry) Name() string {
	return e.name
}

func (e *TreeEntry) Hash() string {
	return e.id.String()
}

func (e *TreeEntry) ID() ID {
	return e.id
}

func (e *TreeEntry) IsDirectory() bool {
	return e.mode == ModeDirectory
}

func (e *TreeEntry) IsExecutable() bool {
	return e.mode == ModeExecutable
}

// Tree represents a Git tree object (directory)
type Tree struct {
	entries []TreeEntry
	hash    string
}

// NewTree creates a tree object from the list of Tree Entries
func NewTree(treeEntries []TreeEntry) (*Tree, error) {
	entries := slices.Clone(treeEntries)
	slices.SortStableFunc(entries, compareTreeEntries)

	for i := 1; i < len(entries); i++ {
		if entries[i].name == entries[i-1].name {
			return nil, fmt.Errorf("duplicate tree entry: %s", entries[i].name)
		}
	}

	tree := &Tree{entries: entries}
	hash, err := utils.ComputeHash(tree.Content(), utils.TreeObjectType)
	if err != nil {
		return nil, fmt.Errorf("failed to compute hash for tree: %w", err)
	}
	tree.hash = hash

	return tree, nil
}

// compareTreeEntries orders entries by name, directories compare as if
// they had a trailing "/".
func compareTreeEntries(a, b TreeEntry) int {
	return strings.Compare(sortableName(a), sortableName(b))
}

func sortableName(entry TreeEntry) string {
	if entry.IsDirectory() {
		return entry.name + "/"
	}
	return entry.name
}

// Hash returns the SHA-1 hash of the tree
func (t *Tree) Hash() string {
	return t.hash
}

// Entries returns all tree entries
func (t *Tree) Entries() []TreeEntry {
	return t.entries
}

// Content returns the raw tree content, one "<mode> <name>\0<20 byte id>"
// record per entry.
func (t *Tree) Content() []byte {
	var buf bytes.Buffer
	for _, entry := range t.entries {
		buf.WriteString(string(entry.mode))
		buf.WriteByte(' ')
		buf.WriteString(entry.name)
		buf.WriteByte(0)
		buf.Write(entry.id[:])
	}
	return buf.Bytes()
}

// Size returns the size of the tree content
func (t *Tree) Size() int {
	return len(t.Content())
}

// Type identifies trees in object headers
func (t *Tree) Type() utils.ObjectType {
	return utils.TreeObjectType
}

// Header returns the Git object header
func (t *Tree) Header() string {
	return utils.BuildHeader(utils.TreeObjectType, t.Size())
}

func (t *Tree) Data() []byte {
	return append([]byte(t.Header()), t.Content()...)
}

// String returns a human-readable representation
func (t *Tree) String() string {
	return fmt.Sprintf("Tree{hash: %s, entries: %d}", t.hash, len(t.entries))
}

// FindEntry finds an entry by name
func (t *Tree) FindEntry(name string) (*TreeEntry, bool) {
	for i := range t.entries {
		if t.entries[i].name == name {
			return &t.entries[i], true
		}
	}
	return nil, false
}
