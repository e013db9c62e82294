package configloader

import (
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Structure to bind application parameters
type Config struct {
	LogLevel      string `mapstructure:"LOG_LEVEL"`       // logrus library log level to be assigned
	WorkspacePath string `mapstructure:"WORKSPACE_PATH"`  // root folder holding environments and applications
	CatalogPath   string `mapstructure:"CATALOG_PATH"`    // launch profile and asset catalog file
	CivitaiAPIKey string `mapstructure:"CIVITAI_API_KEY"` // bearer token for gated model downloads
	StorjAccess   string `mapstructure:"STORJ_ACCESS"`    // access grant enabling the asset mirror
}

// Initialize default parameters values
func initDefaultConfiguration() {
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("WORKSPACE_PATH", "/workspace")
	viper.SetDefault("CATALOG_PATH", "")
	viper.SetDefault("CIVITAI_API_KEY", "")
	viper.SetDefault("STORJ_ACCESS", "")
}

// Load configuration from env file
func LoadConfiguration(applicationName string, configurationFilePath string) (config Config, err error) {
	initDefaultConfiguration()

	if configurationFilePath == "" {
		// Read the volume root path
		root := filepath.VolumeName(".")
		if root == "" {
			root = string(filepath.Separator)
		}

		// Set configuration named config from etc/*appName*, $HOME/.*appName* or current folders
		viper.AddConfigPath(filepath.Join(root, "etc", applicationName))
		viper.AddConfigPath(filepath.Join("$HOME", "."+applicationName))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	} else {
		// Set the configuration file path
		viper.SetConfigFile(configurationFilePath)
	}

	// Get configuration from environment variables, if set
	viper.AutomaticEnv()

	// Get configuration from configuration file, if set
	if configError := viper.ReadInConfig(); configError != nil {
		logrus.Debug(configError.Error())
	}
	err = viper.Unmarshal(&config)

	return
}
