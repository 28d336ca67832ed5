package cmd

import (
	"fmt"

	"github.com/KostasZigo/gogitodb/internal/constants"
	"github.com/KostasZigo/gogitodb/internal/repository"
	"github.com/KostasZigo/gogitodb/utils"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Initialize a new GoGit repository",
	Long: `The 'init' command sets up a new GoGit repository in the current directory.
It creates a .gogit directory with an empty object database and the refs layout.
If a repository already exists, the command will not overwrite existing data.`,
	SilenceUsage: true,
	Args:         maximumArgs(1),
	RunE:         runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// runInit initializes the repository and confirms its object database opens.
func runInit(cmd *cobra.Command, args []string) error {
	dirPath := "."
	if len(args) > 0 {
		dirPath = args[0]
	}

	if err := repository.InitRepository(dirPath); err != nil {
		return fmt.Errorf("failed to initialize repository - %w", err)
	}

	repo, err := repository.Open(dirPath)
	if err != nil {
		return fmt.Errorf("repository initialized but cannot be opened - %w", err)
	}
	if err := repo.Close(); err != nil {
		return err
	}

	cmd.Printf("Initialized empty GoGit repository in %s\n", utils.BuildDirPath(dirPath, constants.Gogit))
	return nil
}
