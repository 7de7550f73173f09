// Package config provides per-repository configuration management,
// reading and writing the gitflow configuration file kept under .git.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const configFileName = ".gitflow_config"

// RepoConfig represents the repository configuration
type RepoConfig struct {
	Remote    *string `json:"remote,omitempty"`
	AssumeYes *bool   `json:"assumeYes,omitempty"`
}

func configPath(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", configFileName)
}

// GetRepoConfig reads the repository configuration
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	data, err := os.ReadFile(configPath(repoRoot))
	if err != nil {
		// Config doesn't exist - return default
		return &RepoConfig{}, nil
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}

	return &config, nil
}

func writeRepoConfig(repoRoot string, config *RepoConfig) error {
	configJSON, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath(repoRoot), configJSON, 0600)
}

// GetRemote returns the configured remote name, or "" when not set
func GetRemote(repoRoot string) (string, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return "", err
	}

	if config.Remote != nil && *config.Remote != "" {
		return *config.Remote, nil
	}

	return "", nil
}

// SetRemote updates the remote name in the config
func SetRemote(repoRoot string, remote string) error {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		config = &RepoConfig{}
	}

	config.Remote = &remote
	return writeRepoConfig(repoRoot, config)
}

// GetAssumeYes returns whether prompts are skipped by default, or false when not set
func GetAssumeYes(repoRoot string) (bool, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return false, err
	}

	if config.AssumeYes != nil {
		return *config.AssumeYes, nil
	}

	return false, nil
}

// SetAssumeYes updates the assumeYes setting in the config
func SetAssumeYes(repoRoot string, enabled bool) error {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		config = &RepoConfig{}
	}

	config.AssumeYes = &enabled
	return writeRepoConfig(repoRoot, config)
}
