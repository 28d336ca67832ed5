package objects

import (
	"testing"
	"time"

	"github.com/KostasZigo/gogitodb/testutils"
	"github.com/KostasZigo/gogitodb/utils"
)

// openTestStore creates a repository with .gogit/objects and opens its store.
// The store is closed on cleanup.
func openTestStore(t *testing.T) (*ObjectStore, string) {
	t.Helper()

	repoPath := testutils.SetupTestRepoWithGogitDir(t)
	store, err := OpenObjectStore(repoPath)
	if err != nil {
		t.Fatalf("Failed to open object store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})

	return store, repoPath
}

// storeObject stores obj and fails test on error.
func storeObject(t *testing.T, store *ObjectStore, obj Object) {
	t.Helper()

	if err := store.Store(obj); err != nil {
		t.Fatalf("Failed to store %s: %v", obj.Type(), err)
	}
}

// readObject reads the object with the given hex hash and fails test on error.
func readObject(t *testing.T, store *ObjectStore, hash string) (utils.ObjectType, []byte) {
	t.Helper()

	objectType, content, err := store.Read(MustParseID(hash))
	if err != nil {
		t.Fatalf("Failed to read object %s: %v", hash, err)
	}

	return objectType, content
}

// assertBlobHash verifies blob hash matches expected value for given content.
func assertBlobHash(t *testing.T, blob *Blob, content []byte) {
	t.Helper()

	expectedHash, err := utils.ComputeHash(content, utils.BlobObjectType)
	if err != nil {
		t.Fatalf("Hash computation failed: %v", err)
	}

	if blob.Hash() != expectedHash {
		t.Fatalf("Expected hash [%s], got [%s]", expectedHash, blob.Hash())
	}
}

// assertBlobContent verifies blob stores exact content and correct size.
func assertBlobContent(t *testing.T, blob *Blob, expectedContent []byte) {
	t.Helper()

	if blob.Size() != len(expectedContent) {
		t.Fatalf("Expected size %d, got %d", len(expectedContent), blob.Size())
	}

	if string(blob.Content()) != string(expectedContent) {
		t.Fatalf("Expected content [%q], got [%q]", expectedContent, blob.Content())
	}
}

// createTreeEntry creates tree entry and fails test on error.
func createTreeEntry(t *testing.T, mode FileMode, name, hash string) TreeEntry {
	t.Helper()

	entry, err := NewTreeEntry(mode, name, hash)
	if err != nil {
		t.Fatalf("Failed to create tree entry: %v", err)
	}

	return *entry
}

// createTree creates tree from entries and fails test on error.
func createTree(t *testing.T, entries []TreeEntry) *Tree {
	t.Helper()

	tree, err := NewTree(entries)
	if err != nil {
		t.Fatalf("Failed to create tree: %v", err)
	}

	return tree
}

// createTag creates an annotated tag with a random tagger and fails test on error.
func createTag(t *testing.T, target string, targetType utils.ObjectType, name string) *Tag {
	t.Helper()

	tagger := createTestAuthor(testutils.RandomString(10), testutils.RandomString(20))
	tag, err := NewTag(target, targetType, name, testutils.RandomString(30), tagger)
	if err != nil {
		t.Fatalf("Failed to create tag: %v", err)
	}

	return tag
}

// createTestAuthor returns test author with UTC timezone.
func createTestAuthor(name, email string) Author {
	return Author{
		Name:      name,
		Email:     email,
		Timestamp: time.Now().UTC().Truncate(time.Second),
	}
}
