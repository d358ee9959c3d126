package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/Alos-no/cfapi/internal/constants"
)

const redactedValue = "[REDACTED]"

// CLIConfig is the on-disk CLI configuration, persisted to
// ~/.cfapi/config.yml.
type CLIConfig struct {
	Endpoint string `json:"endpoint,omitempty"  yaml:"endpoint,omitempty"`
	Token    string `json:"token,omitempty"     yaml:"token,omitempty"`
	APIKey   string `json:"api_key,omitempty"   yaml:"api_key,omitempty"`
	APIEmail string `json:"api_email,omitempty" yaml:"api_email,omitempty"`
	Output   string `json:"output,omitempty"    yaml:"output,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Inspect and edit the cfapi CLI configuration file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadCLIConfig()

			// Secrets never leave the config file, regardless of output
			// format.
			display := *config
			if display.Token != "" {
				display.Token = redactedValue
			}

			if display.APIKey != "" {
				display.APIKey = redactedValue
			}

			return renderOutput(display, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Key", "Value")

				for _, key := range configKeys {
					value := configFieldFor(&display, key)
					if *value == "" {
						continue
					}

					_ = table.Append(key, *value)
				}

				return table.Render()
			})
		},
	}
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print a single configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadCLIConfig()

			value := configFieldFor(config, args[0])
			if value == nil {
				return fmt.Errorf("%w: %s", ErrUnknownConfigKey, args[0])
			}

			if *value != "" && isSecretKey(args[0]) {
				_, _ = os.Stdout.WriteString(redactedValue + "\n")

				return nil
			}

			_, _ = os.Stdout.WriteString(*value + "\n")

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY [VALUE]",
		Short: "Set a configuration value",
		Long: "Set a configuration value. For secret keys (token, api_key) the " +
			"value may be omitted to enter it at a hidden prompt instead of " +
			"leaving it in shell history.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			config := loadCLIConfig()

			field := configFieldFor(config, key)
			if field == nil {
				return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
			}

			var (
				value string
				err   error
			)

			switch {
			case len(args) == 2:
				value = args[1]
			case isSecretKey(key):
				value, err = promptSecret(fmt.Sprintf("Enter %s: ", key))
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("%w for key %s", ErrValueRequired, key)
			}

			if value == "" {
				return fmt.Errorf("%w for key %s", ErrValueRequired, key)
			}

			*field = value

			err = saveCLIConfig(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Set %s\n", key)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadCLIConfig()

			field := configFieldFor(config, args[0])
			if field == nil {
				return fmt.Errorf("%w: %s", ErrUnknownConfigKey, args[0])
			}

			*field = ""

			err := saveCLIConfig(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Unset %s\n", args[0])

			return nil
		},
	}
}

// configKeys lists the recognized configuration keys in display order.
var configKeys = []string{"endpoint", "token", "api_key", "api_email", "output"}

// configFieldFor maps a key to the struct field backing it, or nil for an
// unknown key.
func configFieldFor(config *CLIConfig, key string) *string {
	switch key {
	case "endpoint":
		return &config.Endpoint
	case "token":
		return &config.Token
	case "api_key":
		return &config.APIKey
	case "api_email":
		return &config.APIEmail
	case "output":
		return &config.Output
	default:
		return nil
	}
}

func isSecretKey(key string) bool {
	return key == "token" || key == "api_key"
}

// promptSecret reads a value from the terminal with echo disabled.
func promptSecret(prompt string) (string, error) {
	if !term.IsTerminal(int(syscall.Stdin)) {
		return "", ErrNothingToPrompt
	}

	_, _ = os.Stderr.WriteString(prompt)

	secret, err := term.ReadPassword(int(syscall.Stdin))

	_, _ = os.Stderr.WriteString("\n")

	if err != nil {
		return "", fmt.Errorf("reading secret: %w", err)
	}

	return string(secret), nil
}

func loadCLIConfig() *CLIConfig {
	return &CLIConfig{
		Endpoint: viper.GetString("endpoint"),
		Token:    viper.GetString("token"),
		APIKey:   viper.GetString("api_key"),
		APIEmail: viper.GetString("api_email"),
		Output:   viper.GetString("output"),
	}
}

func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	configDir := filepath.Join(home, ".cfapi")

	err = os.MkdirAll(configDir, constants.ConfigDirPerm)
	if err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	return filepath.Join(configDir, "config.yml"), nil
}

func saveCLIConfig(config *CLIConfig) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
