package runner

import (
	"os"
	"path/filepath"

	"github.com/StefanOctavian/lambdaz"
	"github.com/goccy/go-yaml"
	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"
)

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}

func init() {
	// create the default token spec on first run so users have a template to
	// customize
	if fileutil.FileExists(lambdaz.DefaultSpecFilePath) {
		return
	}
	if err := validateDir(filepath.Join(getUserHomeDir(), ".config/lambdaz")); err != nil {
		gologger.Error().Msgf("lambdaz config dir not found and failed to create got: %v", err)
		return
	}
	if err := lambdaz.GenerateSample(lambdaz.DefaultSpecFilePath); err != nil {
		gologger.Error().Msgf("failed to save default token spec to %v got: %v", lambdaz.DefaultSpecFilePath, err)
	}
}

// LoadSpec reads a token spec yaml file, surfacing syntax errors with source
// context.
func LoadSpec(path string) ([]lambdaz.TokenSpec, error) {
	bin, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg lambdaz.Config
	if err := yaml.Unmarshal(bin, &cfg); err != nil {
		gologger.Error().Msgf("token spec syntax error.\n %v\n.", yaml.FormatError(err, true, true))
		return nil, err
	}
	if len(cfg.Tokens) == 0 {
		return nil, errorutil.NewWithTag("runner", "token spec %v defines no tokens", path)
	}
	return cfg.Tokens, nil
}

// validateDir checks if dir exists if not creates it
func validateDir(dirPath string) error {
	if fileutil.FolderExists(dirPath) {
		return nil
	}
	return fileutil.CreateFolder(dirPath)
}
