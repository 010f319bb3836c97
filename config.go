package lambdaz

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	DefaultSpecFilePath = filepath.Join(getUserHomeDir(), ".config/lambdaz/tokens.yaml")
)

// Config is an on-disk lexer spec: an ordered list of token definitions.
// YAML sequence order is preserved, which is what gives earlier tokens their
// tie-breaking priority.
type Config struct {
	Tokens []TokenSpec `yaml:"tokens"`
}

// NewConfig reads a token spec from file
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GenerateSample creates a sample yaml spec file with the LambdaZ defaults
func GenerateSample(filePath string) error {
	cfg := Config{
		Tokens: DefaultTokens,
	}
	bin, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}
