package metadata

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/Strum355/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFinder struct {
	files []string
	err   error
	dir   string
}

func (f *fakeFinder) Find(dir string) ([]string, error) {
	f.dir = dir
	return f.files, f.err
}

var corpus = []string{
	"/data/SP1_W_CN_01.wav",
	"/data/SP1_W_CN_02.wav",
	"/data/SP2-M-en-10.wav",
	"/data/nested/SP36_gb_M_EN_05.wav",
	"/data/nested/SP2-M-ch-03.wav",
}

func TestExtract(t *testing.T) {
	table, speakers, err := Extract(context.Background(), corpus)

	require.NoError(t, err)
	assert.Equal(t, len(corpus), table.Len())
	assert.Equal(t, corpus, table.Paths())
	assert.Equal(t, []string{"SP1", "SP2", "SP36gb"}, speakers)

	rec, ok := table.Lookup("/data/SP1_W_CN_01.wav")
	require.True(t, ok)
	assert.Equal(t, Record{Speaker: "SP1", Gender: "f", Language: "ch", Item: "1"}, rec)
}

func TestExtract_NormalisedFields(t *testing.T) {
	table, _, err := Extract(context.Background(), corpus)
	require.NoError(t, err)

	table.Each(func(path string, rec Record) {
		for _, attr := range Attributes {
			value, ok := rec.Get(attr)
			assert.True(t, ok)
			assert.NotEmpty(t, value, path)
		}
		assert.Contains(t, []string{"m", "f"}, rec.Gender, path)
		assert.Contains(t, []string{"ch", "en"}, rec.Language, path)
		assert.NotEqual(t, byte('0'), rec.Item[0], path)
	})
}

func TestExtract_Idempotent(t *testing.T) {
	first, firstSpeakers, err := Extract(context.Background(), corpus)
	require.NoError(t, err)
	second, secondSpeakers, err := Extract(context.Background(), corpus)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstSpeakers, secondSpeakers)
}

func TestExtract_MalformedAborts(t *testing.T) {
	paths := []string{"/data/SP1_W_CN_01.wav", "/data/broken_file.wav", "/data/SP2-M-en-10.wav"}

	table, speakers, err := Extract(context.Background(), paths)

	assert.Nil(t, table)
	assert.Nil(t, speakers)
	assert.True(t, errors.Is(err, ErrMalformedFilename))
}

func TestExtract_DuplicatePathLastWriteWins(t *testing.T) {
	table := NewTable(
		Entry{Path: "a.wav", Record: Record{Speaker: "SP1", Gender: "m", Language: "en", Item: "1"}},
		Entry{Path: "b.wav", Record: Record{Speaker: "SP2", Gender: "f", Language: "en", Item: "1"}},
		Entry{Path: "a.wav", Record: Record{Speaker: "SP3", Gender: "f", Language: "ch", Item: "2"}},
	)

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []string{"a.wav", "b.wav"}, table.Paths())
	rec, _ := table.Lookup("a.wav")
	assert.Equal(t, "SP3", rec.Speaker)
	assert.Equal(t, []string{"SP3", "SP2"}, Speakers(table))
}

func TestExtract_Empty(t *testing.T) {
	table, speakers, err := Extract(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
	assert.Empty(t, speakers)
}

func TestExtractDir(t *testing.T) {
	finder := &fakeFinder{files: corpus}

	table, speakers, err := ExtractDir(context.Background(), finder, "/data")

	require.NoError(t, err)
	assert.Equal(t, "/data", finder.dir)
	assert.Equal(t, len(corpus), table.Len())
	assert.Len(t, speakers, 3)
}

func TestExtractDir_FinderError(t *testing.T) {
	finder := &fakeFinder{err: errors.New("permission denied")}

	_, _, err := ExtractDir(context.Background(), finder, "/data")

	assert.EqualError(t, err, "permission denied")
}

func TestTable_PathsIsCopy(t *testing.T) {
	table, _, err := Extract(context.Background(), corpus)
	require.NoError(t, err)

	paths := table.Paths()
	paths[0] = "mutated"

	assert.Equal(t, corpus[0], table.Paths()[0])
}

func TestRecord_GetUnknownAttribute(t *testing.T) {
	_, ok := Record{Speaker: "SP1"}.Get(Attribute("age"))

	assert.False(t, ok)
	assert.False(t, Attribute("age").Valid())
	assert.True(t, Gender.Valid())
}

func TestExtractDir_FailureLogCarriesDirectory(t *testing.T) {
	var buf bytes.Buffer
	log.InitJSONLogger(&log.Config{Output: &buf})
	defer log.InitSimpleLogger(&log.Config{Output: io.Discard})

	finder := &fakeFinder{files: []string{"/corpus/SP1_W_CN_01.wav", "/corpus/broken.wav"}}
	_, _, err := ExtractDir(context.Background(), finder, "/corpus")

	require.Error(t, err)
	assert.Contains(t, buf.String(), "Unable to extract metadata from filename")
	assert.Contains(t, buf.String(), "directory")
	assert.Contains(t, buf.String(), "/corpus")
}
