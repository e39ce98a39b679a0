package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/amarlabs/amar/pkg/schedule"
)

// Config exposes the device configuration the rest of the app consumes.
type Config interface {
	BasePath() string
	AssistantBackend() string
	AssistantModel() string
	Policy() schedule.Policy
}

// LoadConfig reads the .amar config file (current directory or
// AMAR_CONFIG_PATH) with AMAR_* env overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.amar.db")
	viper.SetDefault("assistant.backend", "simulated")
	viper.SetDefault("assistant.model", "gemini-2.0-flash")
	viper.SetDefault("validation.allow-compartment-sharing", true)
	viper.SetDefault("validation.allow-time-sharing", true)
	viper.SetConfigName(".amar") // .yaml is implicit
	viper.SetEnvPrefix("AMAR")
	viper.AutomaticEnv()

	if override := os.Getenv("AMAR_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path:    path,
		Backend: viper.GetString("assistant.backend"),
		Model:   viper.GetString("assistant.model"),
		Validation: schedule.Policy{
			AllowCompartmentSharing: viper.GetBool("validation.allow-compartment-sharing"),
			AllowTimeSharing:        viper.GetBool("validation.allow-time-sharing"),
		},
	}, nil
}

type fileConfig struct {
	Path       string `json:"path"`
	Backend    string `json:"backend"`
	Model      string `json:"model"`
	Validation schedule.Policy
}

func (f *fileConfig) BasePath() string         { return f.Path }
func (f *fileConfig) AssistantBackend() string { return f.Backend }
func (f *fileConfig) AssistantModel() string   { return f.Model }
func (f *fileConfig) Policy() schedule.Policy  { return f.Validation }
