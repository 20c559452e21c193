package query

import (
	"Voicemeta/metadata"
	"fmt"
)

// GetDataLabels returns the attr value of each filename, in the order given.
// eg. GetDataLabels(table, files, metadata.Gender) gives "m" or "f" per file.
func GetDataLabels(table *metadata.Table, filenames []string, attr metadata.Attribute) ([]string, error) {
	if !attr.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAttribute, attr)
	}

	labels := make([]string, len(filenames))
	for i, filename := range filenames {
		rec, ok := table.Lookup(filename)
		if !ok {
			return nil, &UnknownKeyError{Path: filename}
		}
		labels[i], _ = rec.Get(attr)
	}
	return labels, nil
}

// GetDataFor returns the files, in table order, whose attr value satisfies m.
// Records without attr never match, and a nil m matches nothing.
// eg. GetDataFor(table, metadata.Gender, Scalar("m")) gives every male speaker file.
func GetDataFor(table *metadata.Table, attr metadata.Attribute, m Matcher) []string {
	result := []string{}
	if m == nil {
		return result
	}
	table.Each(func(path string, rec metadata.Record) {
		value, ok := rec.Get(attr)
		if !ok {
			return
		}
		if m.Match(value) {
			result = append(result, path)
		}
	})
	return result
}

// CountBy tallies the files per value of attr
func CountBy(table *metadata.Table, attr metadata.Attribute) map[string]int {
	counts := make(map[string]int)
	table.Each(func(_ string, rec metadata.Record) {
		if value, ok := rec.Get(attr); ok {
			counts[value]++
		}
	})
	return counts
}
