package commands

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/joepikowski/criteo-api-go-client/internal/constants"
)

// CLIConfig is the on-disk shape of ~/.criteo/config.yml.
type CLIConfig struct {
	Endpoint     string `yaml:"endpoint,omitempty"`
	APIVersion   string `yaml:"api_version,omitempty"`
	ClientID     string `yaml:"client_id,omitempty"`
	ClientSecret string `yaml:"client_secret,omitempty"`
	Output       string `yaml:"output,omitempty"`
}

// NewConfigureCommand creates the configure command.
func NewConfigureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Configure API credentials",
		Long: `Interactively configure OAuth2 credentials and save them to
$HOME/.criteo/config.yml. The client secret is read without echo.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigureCommand()
		},
	}
}

func runConfigureCommand() error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Client ID: ")

	clientID, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read client ID: %w", err)
	}

	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return fmt.Errorf("client ID cannot be empty")
	}

	fmt.Print("Client Secret: ")

	secretBytes, err := term.ReadPassword(int(syscall.Stdin))

	fmt.Println()

	if err != nil {
		return fmt.Errorf("failed to read client secret: %w", err)
	}

	clientSecret := strings.TrimSpace(string(secretBytes))
	if clientSecret == "" {
		return fmt.Errorf("client secret cannot be empty")
	}

	fmt.Printf("API version [%s]: ", constants.DefaultAPIVersion)

	apiVersion, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read API version: %w", err)
	}

	apiVersion = strings.TrimSpace(apiVersion)

	config := CLIConfig{
		APIVersion:   apiVersion,
		ClientID:     clientID,
		ClientSecret: clientSecret,
	}

	path, err := saveCLIConfig(&config)
	if err != nil {
		return err
	}

	fmt.Printf("Configuration saved to %s\n", path)

	return nil
}

func saveCLIConfig(config *CLIConfig) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}

	configDir := filepath.Join(home, ".criteo")
	if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(configDir, "config.yml")
	if err := os.WriteFile(path, data, constants.ConfigFilePerm); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return path, nil
}
