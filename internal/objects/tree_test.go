package objects

import (
	"bytes"
	"strings"
	"testing"

	"github.com/KostasZigo/gogitodb/testutils"
	"github.com/KostasZigo/gogitodb/utils"
)

// TREE ENTRY TESTS

func TestNewTreeEntry(t *testing.T) {
	hash := testutils.RandomHash()
	entry, err := NewTreeEntry(ModeRegularFile, "test.txt", hash)
	if err != nil {
		t.Fatalf("Expected New Tree Entry to be created: %v", err)
	}

	if entry.Mode() != ModeRegularFile {
		t.Errorf("Expected mode %s, got %s", ModeRegularFile, entry.Mode())
	}
	if entry.Name() != "test.txt" {
		t.Errorf("Expected name 'test.txt', got %s", entry.Name())
	}
	if entry.Hash() != hash {
		t.Errorf("Expected hash %s, got %s", hash, entry.Hash())
	}
}

func TestNewTreeEntry_Invalid(t *testing.T) {
	hash := testutils.RandomHash()

	if _, err := NewTreeEntry("100777", "a.txt", hash); err == nil {
		t.Error("Expected error for invalid mode")
	}
	if _, err := NewTreeEntry(ModeRegularFile, "", hash); err == nil {
		t.Error("Expected error for empty name")
	}
	if _, err := NewTreeEntry(ModeRegularFile, "dir/a.txt", hash); err == nil {
		t.Error("Expected error for name containing a separator")
	}

	_, err := NewTreeEntry(ModeRegularFile, "a.txt", "abc123")
	testutils.AssertErrorIs(t, err, ErrInvalidIdentifier)
}

func TestTreeEntry_IsDirectory(t *testing.T) {
	dirEntry := createTreeEntry(t, ModeDirectory, "src", testutils.RandomHash())
	fileEntry := createTreeEntry(t, ModeExecutable, "run.sh", testutils.RandomHash())

	if !dirEntry.IsDirectory() {
		t.Fatal("Expected directory entry to be identified as directory")
	}
	if fileEntry.IsDirectory() {
		t.Fatal("Expected file entry not to be identified as directory")
	}
	if !fileEntry.IsExecutable() {
		t.Fatal("Expected executable entry to be identified as executable")
	}
}

// TREE TESTS

func TestNewTree_EmptyTree(t *testing.T) {
	tree := createTree(t, []TreeEntry{})

	expectedHash, err := utils.ComputeHash([]byte(""), utils.TreeObjectType)
	if err != nil {
		t.Fatal("Expected hash to be computed")
	}

	if tree.Hash() != expectedHash {
		t.Errorf("Expected empty tree hash %s, got %s", expectedHash, tree.Hash())
	}
}

// TestTree_ContentFormat verifies "<mode> <name>\0<binary id>" records.
func TestTree_ContentFormat(t *testing.T) {
	blob := NewBlob([]byte("test content\n"))
	entry := createTreeEntry(t, ModeRegularFile, "test.txt", blob.Hash())
	tree := createTree(t, []TreeEntry{entry})

	id := entry.ID()
	expected := append([]byte("100644 test.txt\x00"), id[:]...)
	if !bytes.Equal(tree.Content(), expected) {
		t.Errorf("Expected content %q, got %q", expected, tree.Content())
	}
	if !strings.HasPrefix(string(tree.Data()), "tree 36\x00") {
		t.Errorf("Unexpected header in %q", tree.Data())
	}
}

func TestNewTree_SortsEntries(t *testing.T) {
	entries := []TreeEntry{
		createTreeEntry(t, ModeRegularFile, "z.txt", testutils.RandomHash()),
		createTreeEntry(t, ModeRegularFile, "a.txt", testutils.RandomHash()),
		createTreeEntry(t, ModeRegularFile, "m.txt", testutils.RandomHash()),
	}

	tree := createTree(t, entries)
	sortedEntries := tree.Entries()

	for i, name := range []string{"a.txt", "m.txt", "z.txt"} {
		if sortedEntries[i].Name() != name {
			t.Errorf("Expected entry %d to be %s, got %s", i, name, sortedEntries[i].Name())
		}
	}

	// Input order must not matter for the hash
	reversed := createTree(t, []TreeEntry{entries[2], entries[1], entries[0]})
	if reversed.Hash() != tree.Hash() {
		t.Error("Tree hash should not depend on entry input order")
	}
}

// TestNewTree_DirectorySortOrder verifies directories sort as if suffixed with "/".
func TestNewTree_DirectorySortOrder(t *testing.T) {
	tree := createTree(t, []TreeEntry{
		createTreeEntry(t, ModeDirectory, "foo", testutils.RandomHash()),
		createTreeEntry(t, ModeRegularFile, "foo.txt", testutils.RandomHash()),
	})

	// "foo.txt" < "foo/" because '.' < '/'
	if tree.Entries()[0].Name() != "foo.txt" {
		t.Errorf("Expected foo.txt first, got %s", tree.Entries()[0].Name())
	}
}

func TestNewTree_DuplicateEntry(t *testing.T) {
	_, err := NewTree([]TreeEntry{
		createTreeEntry(t, ModeRegularFile, "a.txt", testutils.RandomHash()),
		createTreeEntry(t, ModeRegularFile, "a.txt", testutils.RandomHash()),
	})
	if err == nil {
		t.Fatal("Expected error for duplicate entry names")
	}
}

func TestTree_NestedStructure(t *testing.T) {
	mainBlob := NewBlob([]byte("package main\n"))
	readmeBlob := NewBlob([]byte("# Project\n"))

	srcTree := createTree(t, []TreeEntry{
		createTreeEntry(t, ModeRegularFile, "main.go", mainBlob.Hash()),
	})
	rootTree := createTree(t, []TreeEntry{
		createTreeEntry(t, ModeRegularFile, "README.md", readmeBlob.Hash()),
		createTreeEntry(t, ModeDirectory, "src", srcTree.Hash()),
	})

	if len(rootTree.Entries()) != 2 {
		t.Errorf("Expected 2 entries in root tree, got %d", len(rootTree.Entries()))
	}

	srcEntry, found := rootTree.FindEntry("src")
	if !found {
		t.Fatal("Should find 'src' directory")
	}
	if !srcEntry.IsDirectory() {
		t.Error("'src' should be identified as directory")
	}
	if srcEntry.Hash() != srcTree.Hash() {
		t.Error("src entry hash should match src tree hash")
	}

	if _, found := rootTree.FindEntry("missing"); found {
		t.Error("Should not find missing entry")
	}
}
