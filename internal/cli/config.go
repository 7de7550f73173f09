package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"gitflow.dev/gitflow/internal/config"
	"gitflow.dev/gitflow/internal/git"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Get and set repository configuration",
		Long: `Get and set repository configuration values.

Examples:
  gitflow config get remote
  gitflow config set remote upstream
  gitflow config set assume-yes true`,
	}

	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())

	return cmd
}

func repoRoot() (string, error) {
	repo, err := git.OpenRepository(".")
	if err != nil {
		return "", err
	}
	return repo.Root(), nil
}

// newConfigGetCmd creates the config get command
func newConfigGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := repoRoot()
			if err != nil {
				return err
			}

			key := args[0]
			switch key {
			case "remote":
				remote, err := config.GetRemote(root)
				if err != nil {
					return fmt.Errorf("failed to get remote: %w", err)
				}
				if remote == "" {
					remote = git.GetRemote()
				}
				fmt.Println(remote)
			case "assume-yes":
				enabled, err := config.GetAssumeYes(root)
				if err != nil {
					return fmt.Errorf("failed to get assume-yes: %w", err)
				}
				fmt.Println(enabled)
			default:
				return fmt.Errorf("unknown configuration key: %s", key)
			}

			return nil
		},
	}

	return cmd
}

// newConfigSetCmd creates the config set command
func newConfigSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := repoRoot()
			if err != nil {
				return err
			}

			key, value := args[0], args[1]
			switch key {
			case "remote":
				if err := config.SetRemote(root, value); err != nil {
					return fmt.Errorf("failed to set remote: %w", err)
				}
			case "assume-yes":
				enabled, err := strconv.ParseBool(value)
				if err != nil {
					return fmt.Errorf("assume-yes must be true or false: %w", err)
				}
				if err := config.SetAssumeYes(root, enabled); err != nil {
					return fmt.Errorf("failed to set assume-yes: %w", err)
				}
			default:
				return fmt.Errorf("unknown configuration key: %s", key)
			}

			fmt.Printf("Set %s to %s\n", key, value)
			return nil
		},
	}

	return cmd
}
