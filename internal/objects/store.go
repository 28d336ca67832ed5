package objects

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/KostasZigo/gogitodb/internal/constants"
	"github.com/KostasZigo/gogitodb/utils"
	"github.com/google/renameio"
	"github.com/klauspost/compress/zlib"
)

// ObjectStore is the loose object database under .gogit/objects.
// Objects live at objects/<first 2 hex chars>/<remaining 38>, zlib
// compressed, as "<type> <size>\0<content>".
//
// ObjectStore does no locking; callers sharing one across goroutines
// must synchronize externally.
type ObjectStore struct {
	path string
	root *os.Root // nil once closed
}

// OpenObjectStore opens the objects directory of the repository at repoPath.
// The returned store holds the directory open until Close.
func OpenObjectStore(repoPath string) (*ObjectStore, error) {
	objectsDir := filepath.Join(repoPath, constants.Gogit, constants.Objects)

	root, err := os.OpenRoot(objectsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open object directory %s: %w", objectsDir, err)
	}

	slog.Debug("Opened object store", "path", objectsDir)
	return &ObjectStore{
		path: objectsDir,
		root: root,
	}, nil
}

// Path returns the objects directory backing the store.
func (store *ObjectStore) Path() string {
	return store.path
}

// Close releases the objects directory. Calling Close more than once is a no-op.
func (store *ObjectStore) Close() error {
	if store.root == nil {
		return nil
	}

	err := store.root.Close()
	store.root = nil
	slog.Debug("Closed object store", "path", store.path)

	if err != nil {
		return fmt.Errorf("failed to close object store %s: %w", store.path, err)
	}
	return nil
}

// Exists reports whether an object with the given id is stored.
// It never reads object data.
func (store *ObjectStore) Exists(id ID) (bool, error) {
	if store.root == nil {
		return false, ErrStoreClosed
	}

	_, err := store.root.Stat(objectPath(id))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check object %s: %w", id, err)
}

// Read returns the type and content of the object with the given id.
// The returned slice is owned by the caller.
func (store *ObjectStore) Read(id ID) (utils.ObjectType, []byte, error) {
	if store.root == nil {
		return "", nil, ErrStoreClosed
	}

	file, err := store.root.Open(objectPath(id))
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return "", nil, fmt.Errorf("failed to open object %s: %w", id, err)
	}
	defer file.Close()

	data, err := decompress(file)
	if err != nil {
		return "", nil, fmt.Errorf("%w %s: %v", ErrCorruptObject, id, err)
	}

	objectType, content, err := parseLooseObject(data)
	if err != nil {
		return "", nil, fmt.Errorf("object %s: %w", id, err)
	}

	actual, err := HashObject(objectType, content)
	if err != nil {
		return "", nil, fmt.Errorf("object %s: %w", id, err)
	}
	if actual != id {
		return "", nil, fmt.Errorf("%w %s: hash mismatch, content hashes to %s", ErrCorruptObject, id, actual)
	}

	return objectType, content, nil
}

// Store saves obj under its hash. Storing an object that already exists
// is a no-op. The object file appears atomically.
func (store *ObjectStore) Store(obj Object) error {
	if store.root == nil {
		return ErrStoreClosed
	}

	id, err := ParseID(obj.Hash())
	if err != nil {
		return err
	}

	exists, err := store.Exists(id)
	if err != nil {
		return err
	}
	if exists {
		slog.Debug("Object with this hash already exists",
			"hash", id.String())
		return nil
	}

	if err := store.root.MkdirAll(id.dir(), constants.DirPerms); err != nil {
		return fmt.Errorf("failed to create object directory: %w", err)
	}

	compressedData, err := compress(obj.Data())
	if err != nil {
		return fmt.Errorf("failed to compress object: %w", err)
	}

	objectFile := filepath.Join(store.path, objectPath(id))
	if err := renameio.WriteFile(objectFile, compressedData, constants.ObjectPerms); err != nil {
		return fmt.Errorf("failed to write object file: %w", err)
	}

	slog.Debug("Stored object",
		"hash", id.String(),
		"type", obj.Type().String(),
		"compressed_size", len(compressedData))
	return nil
}

func objectPath(id ID) string {
	return filepath.Join(id.dir(), id.file())
}

func compress(data []byte) ([]byte, error) {
	var buffer bytes.Buffer
	writer := zlib.NewWriter(&buffer)

	if _, err := writer.Write(data); err != nil {
		return nil, err
	}

	// Close flushes any buffered data
	if err := writer.Close(); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

func decompress(r io.Reader) ([]byte, error) {
	reader, err := zlib.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	return io.ReadAll(reader)
}

// parseLooseObject splits decompressed "<type> <size>\0<content>" data.
func parseLooseObject(data []byte) (utils.ObjectType, []byte, error) {
	headerEnd := bytes.IndexByte(data[:min(len(data), constants.MaxHeaderLength)], constants.NullByte)
	if headerEnd == -1 {
		return "", nil, fmt.Errorf("%w: no null byte in header", ErrCorruptObject)
	}

	typeWord, sizeText, found := bytes.Cut(data[:headerEnd], []byte{constants.HeaderSeparator})
	if !found {
		return "", nil, fmt.Errorf("%w: malformed header %q", ErrCorruptObject, data[:headerEnd])
	}

	objectType, err := utils.ParseObjectType(string(typeWord))
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrUnknownType, err)
	}

	size, err := strconv.Atoi(string(sizeText))
	if err != nil || size < 0 {
		return "", nil, fmt.Errorf("%w: invalid size %q", ErrCorruptObject, sizeText)
	}

	content := data[headerEnd+1:]
	if len(content) != size {
		return "", nil, fmt.Errorf("%w: header declares %d bytes, found %d", ErrCorruptObject, size, len(content))
	}

	return objectType, content, nil
}
