package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "corpus.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("reads samples", func(t *testing.T) {
		path := writeTempCSV(t, "Text,Language\nhello world,English\nbonjour le monde,French\n")

		corpus, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, []Sample{
			{Text: "hello world", Language: "English"},
			{Text: "bonjour le monde", Language: "French"},
		}, corpus.Samples)
		assert.Zero(t, corpus.Skipped)
	})

	t.Run("column order is free and header is case-insensitive", func(t *testing.T) {
		path := writeTempCSV(t, "language,TEXT\nEnglish,hello world\n")

		corpus, err := Load(path)
		require.NoError(t, err)

		require.Len(t, corpus.Samples, 1)
		assert.Equal(t, Sample{Text: "hello world", Language: "English"}, corpus.Samples[0])
	})

	t.Run("ignores extra columns", func(t *testing.T) {
		path := writeTempCSV(t, "id,Text,Language,source\n1,hello,English,web\n")

		corpus, err := Load(path)
		require.NoError(t, err)

		require.Len(t, corpus.Samples, 1)
		assert.Equal(t, Sample{Text: "hello", Language: "English"}, corpus.Samples[0])
	})

	t.Run("strips byte order mark", func(t *testing.T) {
		path := writeTempCSV(t, "\uFEFFText,Language\nhola,Spanish\n")

		corpus, err := Load(path)
		require.NoError(t, err)
		require.Len(t, corpus.Samples, 1)
		assert.Equal(t, "Spanish", corpus.Samples[0].Language)
	})

	t.Run("handles quoted commas", func(t *testing.T) {
		path := writeTempCSV(t, "Text,Language\n\"hello, how are you?\",English\n")

		corpus, err := Load(path)
		require.NoError(t, err)
		require.Len(t, corpus.Samples, 1)
		assert.Equal(t, "hello, how are you?", corpus.Samples[0].Text)
	})

	t.Run("skips and counts blank rows", func(t *testing.T) {
		path := writeTempCSV(t, "Text,Language\nhello,English\n   ,French\nciao,\nshort\nbonjour,French\n")

		corpus, err := Load(path)
		require.NoError(t, err)

		assert.Len(t, corpus.Samples, 2)
		assert.Equal(t, 3, corpus.Skipped)
	})

	t.Run("missing required column", func(t *testing.T) {
		path := writeTempCSV(t, "Text,Label\nhello,English\n")

		_, err := Load(path)
		assert.ErrorContains(t, err, "Language")
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeTempCSV(t, "")

		_, err := Load(path)
		assert.ErrorContains(t, err, "empty file")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
		assert.Error(t, err)
	})
}

func TestSave_RoundTrip(t *testing.T) {
	samples := []Sample{
		{Text: "hello, how are you?", Language: "English"},
		{Text: "bonjour le monde", Language: "French"},
	}
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, Save(path, samples))

	corpus, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, samples, corpus.Samples)
	assert.Zero(t, corpus.Skipped)
}

func TestComputeStats(t *testing.T) {
	samples := []Sample{
		{Text: "a", Language: "English"},
		{Text: "b", Language: "English"},
		{Text: "c", Language: "English"},
		{Text: "d", Language: "French"},
		{Text: "e", Language: "French"},
		{Text: "f", Language: "German"},
		{Text: "g", Language: "Danish"},
	}

	stats := ComputeStats(samples, 2)

	assert.Equal(t, 7, stats.Total)
	assert.Equal(t, []LanguageCount{
		{Language: "English", Count: 3},
		{Language: "French", Count: 2},
		{Language: "Danish", Count: 1},
		{Language: "German", Count: 1},
	}, stats.Languages)
	assert.Equal(t, []LanguageCount{
		{Language: "Danish", Count: 1},
		{Language: "German", Count: 1},
	}, stats.LowSample)
	assert.Equal(t, 2, stats.MinSamples)
}

func TestComputeStats_DefaultMinimum(t *testing.T) {
	stats := ComputeStats([]Sample{{Text: "a", Language: "English"}}, 0)

	assert.Equal(t, DefaultMinSamples, stats.MinSamples)
	require.Len(t, stats.LowSample, 1)
	assert.Equal(t, "English", stats.LowSample[0].Language)
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil, 0)

	assert.Zero(t, stats.Total)
	assert.Empty(t, stats.Languages)
	assert.Empty(t, stats.LowSample)
}
