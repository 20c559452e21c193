package config

import (
	"os"

	"github.com/spf13/viper"
)

// DefaultAudioExtensions are the file types picked up when scanning a corpus
var DefaultAudioExtensions = []string{"aac", "au", "flac", "m4a", "mp3", "ogg", "wav"}

func initDefaults() {
	dir := os.Getenv("scan_dir")
	if dir == "" {
		dir = "data"
	}
	viper.SetDefault("scan.dir", dir)
	viper.SetDefault("scan.extensions", DefaultAudioExtensions)
}
