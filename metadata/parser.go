package metadata

import (
	"path/filepath"
	"strings"
)

// Stem strips the directory and the final extension from path
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// normaliseStem fixes the known inconsistent tokens before splitting
func normaliseStem(stem string) string {
	stem = strings.ReplaceAll(stem, "6_gb", "6gb")
	stem = strings.ReplaceAll(stem, "_", "-")
	return strings.ReplaceAll(stem, "--", "-")
}

// ParseStem turns a filename stem such as "SP1_W_CN_01" into a Record.
//
// The stem must split into exactly four hyphen separated fields once
// underscores become hyphens. Gender "W" maps to "f", language "cn" maps
// to "ch" and a single leading zero is dropped from the item. An item
// that is empty or only "0" is malformed.
func ParseStem(stem string) (Record, error) {
	fields := strings.Split(normaliseStem(stem), "-")
	if len(fields) != 4 || fields[3] == "" {
		return Record{}, &MalformedFilenameError{Stem: stem, Fields: fields}
	}
	speaker, gender, lang, item := fields[0], fields[1], fields[2], fields[3]

	lang = strings.ToLower(lang)
	if lang == "cn" {
		lang = "ch"
	}

	if gender == "W" {
		gender = "f"
	}
	gender = strings.ToLower(gender)

	if item[0] == '0' {
		item = item[1:]
	}
	if item == "" {
		return Record{}, &MalformedFilenameError{Stem: stem, Fields: fields}
	}

	return Record{
		Speaker:  speaker,
		Gender:   gender,
		Language: lang,
		Item:     item,
	}, nil
}

// ParsePath parses the stem of path, attaching path to any error
func ParsePath(path string) (Record, error) {
	rec, err := ParseStem(Stem(path))
	if err != nil {
		if mfe, ok := err.(*MalformedFilenameError); ok {
			mfe.Path = path
		}
		return Record{}, err
	}
	return rec, nil
}
