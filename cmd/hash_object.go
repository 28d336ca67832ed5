package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/KostasZigo/gogitodb/internal/constants"
	"github.com/KostasZigo/gogitodb/internal/objects"
	"github.com/KostasZigo/gogitodb/utils"
	"github.com/spf13/cobra"
)

var hashObjectCmd = &cobra.Command{
	Use:   "hash-object <filepath>",
	Short: "Compute object hash and optionally store the object from a file",
	Long: `Compute the object hash (SHA-1 hash) for a file's content.
Optionally write the resulting object into the objects folder.

Examples:
  # Compute hash without storing
  gogit hash-object myfile.txt

  # Compute hash and store in .gogit/objects
  gogit hash-object -w myfile.txt

  # Store the file content as a commit object
  gogit hash-object -w -t commit commit.txt`,
	SilenceUsage: true,
	Args:         exactArgs(1, "filepath"),
	RunE:         runHashObject,
}

var (
	writeFlag      bool
	objectTypeFlag string
)

func init() {
	rootCmd.AddCommand(hashObjectCmd)

	hashObjectCmd.Flags().BoolVarP(&writeFlag, "write", "w", false, "Write the object into the objects folder")
	hashObjectCmd.Flags().StringVarP(&objectTypeFlag, "type", "t", string(utils.BlobObjectType), "Object type (blob, tree, commit, tag)")
}

// runHashObject computes hash and optionally stores the object.
func runHashObject(cmd *cobra.Command, args []string) error {
	obj, err := objectFromFile(args[0], utils.ObjectType(objectTypeFlag))
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), obj.Hash())

	if !writeFlag {
		return nil
	}

	repoPath, err := findRepoRoot()
	if err != nil {
		return err
	}

	store, err := objects.OpenObjectStore(repoPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Store(obj); err != nil {
		return fmt.Errorf("failed to store object: %w", err)
	}

	return nil
}

// objectFromFile builds a blob, or a raw object of another type, from a file.
func objectFromFile(path string, objectType utils.ObjectType) (objects.Object, error) {
	if !objectType.IsValid() {
		return nil, fmt.Errorf("%w: %q", objects.ErrUnknownType, objectType)
	}

	if objectType == utils.BlobObjectType {
		return objects.NewBlobFromFile(path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return objects.NewRawObject(objectType, content)
}

// findRepoRoot locates .gogit directory by walking up directory tree.
func findRepoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		gogitPath := filepath.Join(dir, constants.Gogit)
		if info, err := os.Stat(gogitPath); err == nil && info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s directory not found", constants.Gogit)
		}
		dir = parent
	}
}
