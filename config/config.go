package config

import (
	"Voicemeta/utils"
	"strings"

	"github.com/Strum355/log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// InitConfig loads .env if present and sets up viper defaults and env bindings
func InitConfig() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, proceeding with defaults.")
	}
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	initDefaults()
	viper.AutomaticEnv()
}

// ScanDir returns the corpus directory to scan
func ScanDir() string {
	return viper.GetString("scan.dir")
}

// AudioExtensions returns the configured audio extensions, lower-cased and dot-prefixed.
// A comma separated string (as set through the environment) is accepted as well as a list.
func AudioExtensions() []string {
	exts := viper.GetStringSlice("scan.extensions")
	if len(exts) == 1 && strings.Contains(exts[0], ",") {
		exts = strings.Split(exts[0], ",")
	}
	if len(exts) == 0 {
		exts = DefaultAudioExtensions
	}
	return utils.NormalizeExtensions(exts)
}
