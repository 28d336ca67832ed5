package cmd

import (
	"errors"
	"fmt"

	"github.com/KostasZigo/gogitodb/internal/objects"
	"github.com/KostasZigo/gogitodb/internal/repository"
	"github.com/spf13/cobra"
)

var catFileCmd = &cobra.Command{
	Use:   "cat-file (-t | -s | -e | -p) <object>",
	Short: "Provide type, size or content of a repository object",
	Long: `Look up an object by its full 40 character identifier.

Examples:
  # Print the object type
  gogit cat-file -t ce013625030ba8dba906f756967f9e9ca394464a

  # Print the raw object content
  gogit cat-file -p ce013625030ba8dba906f756967f9e9ca394464a

  # Exit with an error unless the object exists
  gogit cat-file -e ce013625030ba8dba906f756967f9e9ca394464a`,
	SilenceUsage: true,
	Args:         exactArgs(1, "object"),
	RunE:         runCatFile,
}

var (
	catTypeFlag   bool
	catSizeFlag   bool
	catExistsFlag bool
	catPrintFlag  bool
)

func init() {
	rootCmd.AddCommand(catFileCmd)

	catFileCmd.Flags().BoolVarP(&catTypeFlag, "type", "t", false, "Show the object type")
	catFileCmd.Flags().BoolVarP(&catSizeFlag, "size", "s", false, "Show the object size in bytes")
	catFileCmd.Flags().BoolVarP(&catExistsFlag, "exists", "e", false, "Check the object exists, print nothing")
	catFileCmd.Flags().BoolVarP(&catPrintFlag, "print", "p", false, "Print the raw object content")
	catFileCmd.MarkFlagsMutuallyExclusive("type", "size", "exists", "print")
	catFileCmd.MarkFlagsOneRequired("type", "size", "exists", "print")
}

// runCatFile opens the enclosing repository and reports on one object.
func runCatFile(cmd *cobra.Command, args []string) error {
	hash := args[0]

	repoPath, err := findRepoRoot()
	if err != nil {
		return err
	}

	repo, err := repository.Open(repoPath)
	if err != nil {
		return err
	}
	defer repo.Close()

	if catExistsFlag {
		exists, err := repo.Contains(hash)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: %s", objects.ErrNotFound, hash)
		}
		return nil
	}

	obj, err := repo.Get(hash)
	if errors.Is(err, objects.ErrCorruptObject) {
		return fmt.Errorf("cannot read object %s, the repository may be damaged: %w", hash, err)
	}
	if err != nil {
		return err
	}

	switch {
	case catTypeFlag:
		fmt.Fprintln(cmd.OutOrStdout(), obj.Type())
	case catSizeFlag:
		fmt.Fprintln(cmd.OutOrStdout(), obj.Size())
	case catPrintFlag:
		if _, err := cmd.OutOrStdout().Write(obj.Data()); err != nil {
			return fmt.Errorf("failed to write object %s: %w", hash, err)
		}
	}

	return nil
}
