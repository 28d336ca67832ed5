package repository

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/KostasZigo/gogitodb/internal/constants"
	"github.com/KostasZigo/gogitodb/internal/objects"
	"github.com/KostasZigo/gogitodb/utils"
)

var (
	// ErrOpen matches every *OpenError.
	ErrOpen = errors.New("failed to open repository")

	ErrHandleClosed = errors.New("repository handle is closed")
	ErrTypeMismatch = errors.New("object type mismatch")
)

// OpenError reports a location that does not hold a usable repository.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to open repository at %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

func (e *OpenError) Is(target error) bool {
	return target == ErrOpen
}

// Repository is an open handle on one repository's object database.
// It goes from open to closed exactly once.
//
// A Repository is not safe for concurrent use.
type Repository struct {
	path  string
	store *objects.ObjectStore // nil once closed
}

// Open binds a handle to the repository rooted at path, the directory
// that contains .gogit.
func Open(path string) (*Repository, error) {
	gogitDir := filepath.Join(path, constants.Gogit)

	info, err := os.Stat(gogitDir)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	if !info.IsDir() {
		return nil, &OpenError{Path: path, Err: fmt.Errorf("%s is not a directory", gogitDir)}
	}

	store, err := objects.OpenObjectStore(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	slog.Debug("Opened repository", "path", path)
	return &Repository{
		path:  path,
		store: store,
	}, nil
}

// Path returns the repository root the handle was opened with.
func (r *Repository) Path() string {
	return r.path
}

// IsClosed reports whether Close has been called.
func (r *Repository) IsClosed() bool {
	return r.store == nil
}

// Close releases the object database. Objects already returned by Get keep
// their data, only ReadRaw stops working. Calling Close again is a no-op.
func (r *Repository) Close() error {
	if r.store == nil {
		return nil
	}

	store := r.store
	r.store = nil
	slog.Debug("Closed repository", "path", r.path)

	return store.Close()
}

// Contains reports whether an object with the given hex identifier exists.
// A well formed identifier that is absent yields false, not an error.
func (r *Repository) Contains(hex string) (bool, error) {
	if r.store == nil {
		return false, ErrHandleClosed
	}

	id, err := objects.ParseID(hex)
	if err != nil {
		return false, err
	}

	return r.store.Exists(id)
}

// Get looks up the object with the given hex identifier.
func (r *Repository) Get(hex string) (*Object, error) {
	return r.Lookup(hex, utils.AnyObjectType)
}

// Lookup is Get restricted to one object kind, utils.AnyObjectType accepts all.
func (r *Repository) Lookup(hex string, want utils.ObjectType) (*Object, error) {
	if r.store == nil {
		return nil, ErrHandleClosed
	}

	id, err := objects.ParseID(hex)
	if err != nil {
		return nil, err
	}

	objectType, data, err := r.store.Read(id)
	if err != nil {
		return nil, err
	}

	obj, err := wrapObject(r, id, objectType, data)
	if err != nil {
		return nil, err
	}

	if !obj.Type().Matches(want) {
		return nil, fmt.Errorf("%w: %s is a %s, not a %s", ErrTypeMismatch, id, obj.Type(), want)
	}

	return obj, nil
}

// readRaw re-fetches the content of id for Object.ReadRaw.
func (r *Repository) readRaw(id objects.ID) ([]byte, error) {
	if r.store == nil {
		return nil, ErrHandleClosed
	}

	_, data, err := r.store.Read(id)
	if err != nil {
		return nil, err
	}

	return data, nil
}
