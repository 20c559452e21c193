package metadata

import (
	"context"
	"strconv"

	"github.com/Strum355/log"
)

// Finder lists the audio files found under a directory
type Finder interface {
	Find(dir string) ([]string, error)
}

// Extract parses every path into a Table keyed by the untouched path and returns the
// distinct speakers in first-seen order. The first malformed filename aborts the run.
func Extract(ctx context.Context, paths []string) (*Table, []string, error) {
	if _, ok := ctx.Value(log.Key).(log.Fields); !ok {
		ctx = context.WithValue(ctx, log.Key, log.Fields{
			"files": len(paths),
		})
	}

	table := NewTable()
	for _, path := range paths {
		rec, err := ParsePath(path)
		if err != nil {
			log.WithContext(ctx).WithError(err).Error("Unable to extract metadata from filename")
			return nil, nil, err
		}
		table.put(path, rec)
	}
	speakers := Speakers(table)
	log.WithContext(ctx).Info("Extracted " + strconv.Itoa(table.Len()) + " records from " + strconv.Itoa(len(speakers)) + " speakers")
	return table, speakers, nil
}

// ExtractDir discovers the audio files under dir with finder and extracts their metadata
func ExtractDir(ctx context.Context, finder Finder, dir string) (*Table, []string, error) {
	ctx = context.WithValue(ctx, log.Key, log.Fields{
		"directory": dir,
	})

	paths, err := finder.Find(dir)
	if err != nil {
		log.WithContext(ctx).WithError(err).Error("Unable to list audio files")
		return nil, nil, err
	}
	log.WithContext(ctx).Info("Extracting metadata from " + strconv.Itoa(len(paths)) + " files")

	return Extract(ctx, paths)
}

// Speakers returns the distinct speaker IDs of table in table order
func Speakers(table *Table) []string {
	seen := make(map[string]struct{})
	speakers := []string{}
	table.Each(func(_ string, rec Record) {
		if _, ok := seen[rec.Speaker]; ok {
			return
		}
		seen[rec.Speaker] = struct{}{}
		speakers = append(speakers, rec.Speaker)
	})
	return speakers
}
