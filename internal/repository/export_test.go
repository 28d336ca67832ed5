package repository

import (
	"testing"
	"time"

	"github.com/KostasZigo/gogitodb/internal/objects"
	"github.com/KostasZigo/gogitodb/testutils"
	"github.com/KostasZigo/gogitodb/utils"
)

// fixture holds one stored object of every kind, linked the way git links them.
type fixture struct {
	blob   *objects.Blob
	tree   *objects.Tree
	commit *objects.Commit
	tag    *objects.Tag
}

// openTestRepo initializes a repository and opens a handle closed on cleanup.
func openTestRepo(t *testing.T) (*Repository, string) {
	t.Helper()

	repoPath := testutils.SetupTestRepoWithInit(t)
	repo, err := Open(repoPath)
	if err != nil {
		t.Fatalf("Failed to open repository: %v", err)
	}
	t.Cleanup(func() {
		repo.Close()
	})

	return repo, repoPath
}

// storeObjects writes objects through a separate store, the way an external
// writer populates the repository behind an open handle.
func storeObjects(t *testing.T, repoPath string, objs ...objects.Object) {
	t.Helper()

	store, err := objects.OpenObjectStore(repoPath)
	if err != nil {
		t.Fatalf("Failed to open object store: %v", err)
	}
	defer store.Close()

	for _, obj := range objs {
		if err := store.Store(obj); err != nil {
			t.Fatalf("Failed to store %s: %v", obj.Type(), err)
		}
	}
}

// storeFixture stores a blob, a tree holding it, a commit of the tree and a tag of the commit.
func storeFixture(t *testing.T, repoPath string) fixture {
	t.Helper()

	author := objects.Author{
		Name:      "Professor Oak",
		Email:     "oak@pallet.town",
		Timestamp: time.Now().UTC().Truncate(time.Second),
	}

	blob := objects.NewBlob([]byte("package main\n"))

	entry, err := objects.NewTreeEntry(objects.ModeRegularFile, "main.go", blob.Hash())
	if err != nil {
		t.Fatalf("Failed to create tree entry: %v", err)
	}
	tree, err := objects.NewTree([]objects.TreeEntry{*entry})
	if err != nil {
		t.Fatalf("Failed to create tree: %v", err)
	}

	commit, err := objects.NewInitialCommit(tree.Hash(), "Initial commit", author)
	if err != nil {
		t.Fatalf("Failed to create commit: %v", err)
	}

	tag, err := objects.NewTag(commit.Hash(), utils.CommitObjectType, "v0.1.0", "First tag", author)
	if err != nil {
		t.Fatalf("Failed to create tag: %v", err)
	}

	storeObjects(t, repoPath, blob, tree, commit, tag)

	return fixture{blob: blob, tree: tree, commit: commit, tag: tag}
}

// getObject looks up hash and fails test on error.
func getObject(t *testing.T, repo *Repository, hash string) *Object {
	t.Helper()

	obj, err := repo.Get(hash)
	if err != nil {
		t.Fatalf("Get(%s) failed: %v", hash, err)
	}

	return obj
}

// assertContains verifies Contains returns expected without error.
func assertContains(t *testing.T, repo *Repository, hash string, expected bool) {
	t.Helper()

	contains, err := repo.Contains(hash)
	if err != nil {
		t.Fatalf("Contains(%s) failed: %v", hash, err)
	}
	if contains != expected {
		t.Errorf("Contains(%s) = %v, want %v", hash, contains, expected)
	}
}
