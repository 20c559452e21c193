package main

import (
	"Voicemeta/config"
	"Voicemeta/discovery"
	"Voicemeta/metadata"
	"Voicemeta/query"
	"Voicemeta/utils"
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/Strum355/log"
)

var (
	production *bool
	dir        *string
)

func main() {
	// Sets Flag to Debug Mode
	production = flag.Bool("p", false, "enables production with json logging")
	dir = flag.String("dir", "", "corpus directory to scan, overrides scan.dir")
	flag.Parse()
	if *production {
		log.InitJSONLogger(&log.Config{Output: os.Stdout})
	} else {
		log.InitSimpleLogger(&log.Config{Output: os.Stdout})
	}

	// Sets up Configurations for Viper
	config.InitConfig()

	scanDir := config.ScanDir()
	if *dir != "" {
		scanDir = *dir
	}

	if err := run(context.Background(), scanDir); err != nil {
		os.Exit(1)
	}
}

// run scans scanDir and logs a summary of the corpus
func run(ctx context.Context, scanDir string) error {
	start := time.Now()
	finder := discovery.NewFileFinder(config.AudioExtensions())

	table, speakers, err := metadata.ExtractDir(ctx, finder, scanDir)
	if err != nil {
		log.WithError(err).Error("Corpus scan failed")
		return err
	}

	ctx = context.WithValue(ctx, log.Key, log.Fields{
		"directory": scanDir,
		"files":     table.Len(),
		"speakers":  len(speakers),
		"elapsed":   utils.FormatElapsed(time.Since(start)),
	})
	log.WithContext(ctx).Info("Speakers: " + strings.Join(speakers, ", "))
	log.WithContext(ctx).Info("Gender: " + formatCounts(query.CountBy(table, metadata.Gender)))
	log.WithContext(ctx).Info("Language: " + formatCounts(query.CountBy(table, metadata.Language)))
	return nil
}

// formatCounts renders counts as "key=n" pairs sorted by key
func formatCounts(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, counts[k])
	}
	return strings.Join(parts, " ")
}
