package util

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvKey              = "QUARTERFETCH_ENV"
	dataJockeyApiKeyKey = "DATAJOCKEY_API_KEY"
	dataJockeyUrlKey    = "DATAJOCKEY_BASE_URL"
	yahooUrlKey         = "YAHOO_BASE_URL"
)

type Secrets struct {
	Env              string
	DataJockeyApiKey string
	DataJockeyUrl    string
	YahooUrl         string
}

// LoadSecrets reads configuration from the environment. Values in
// envFile are loaded first without overriding variables that are
// already set; a missing file is not an error.
func LoadSecrets(envFile string) (*Secrets, error) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not load %s: %w", envFile, err)
		}
	}

	return &Secrets{
		Env:              strings.ToLower(os.Getenv(EnvKey)),
		DataJockeyApiKey: os.Getenv(dataJockeyApiKeyKey),
		DataJockeyUrl:    os.Getenv(dataJockeyUrlKey),
		YahooUrl:         os.Getenv(yahooUrlKey),
	}, nil
}
