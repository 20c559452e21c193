package discovery

import (
	"Voicemeta/utils"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// FileFinder walks a filesystem recursively for audio files
type FileFinder struct {
	Fs         afero.Fs // Filesystem to walk, the OS filesystem by default
	Extensions []string // Accepted extensions, normalised with utils.NormalizeExtensions
}

// NewFileFinder returns a FileFinder over the OS filesystem
func NewFileFinder(extensions []string) *FileFinder {
	return &FileFinder{
		Fs:         afero.NewOsFs(),
		Extensions: utils.NormalizeExtensions(extensions),
	}
}

// Find returns the absolute path of every audio file under dir, sorted lexicographically
func (f *FileFinder) Find(dir string) ([]string, error) {
	fs := f.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	var files []string
	err := afero.Walk(fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if utils.IsAudioFile(path, f.Extensions) {
			abs, err := filepath.Abs(path)
			if err != nil {
				return err
			}
			files = append(files, abs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
