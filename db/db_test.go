package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAtMigratesIdempotently(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	database, err := OpenAt(path)
	require.NoError(t, err)
	require.NoError(t, database.Close())

	// Reopening runs migrations again without error.
	database, err = OpenAt(path)
	require.NoError(t, err)
	defer database.Close()

	downloads, err := ListDownloads(database)
	require.NoError(t, err)
	assert.Empty(t, downloads)
}

func TestDownloadLifecycle(t *testing.T) {
	database, err := OpenAt(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer database.Close()

	id, err := InsertDownload(database, &Download{
		URL:          "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		VideoID:      "dQw4w9WgXcQ",
		Title:        "Test Video",
		StartSeconds: 90,
		EndSeconds:   165,
		Speed:        1.5,
		OutputFile:   "Test Video_clip_1-30-2-45_1.5x.mp4",
		Status:       StatusPending,
	})
	require.NoError(t, err)

	downloads, err := ListDownloads(database)
	require.NoError(t, err)
	require.Len(t, downloads, 1)
	assert.Equal(t, id, downloads[0].ID)
	assert.Equal(t, StatusPending, downloads[0].Status)
	assert.Equal(t, "dQw4w9WgXcQ", downloads[0].VideoID)
	assert.Equal(t, 90.0, downloads[0].StartSeconds)
	assert.Equal(t, 1.5, downloads[0].Speed)

	require.NoError(t, MarkDownloadComplete(database, id, 1024))

	downloads, err = ListDownloads(database)
	require.NoError(t, err)
	require.Len(t, downloads, 1)
	assert.Equal(t, StatusComplete, downloads[0].Status)
	assert.Equal(t, int64(1024), downloads[0].Filesize)
}

func TestMarkDownloadError(t *testing.T) {
	database, err := OpenAt(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer database.Close()

	id, err := InsertDownload(database, &Download{URL: "u", Status: StatusPending})
	require.NoError(t, err)

	require.NoError(t, MarkDownloadError(database, id, "ffmpeg failed"))

	downloads, err := ListDownloads(database)
	require.NoError(t, err)
	require.Len(t, downloads, 1)
	assert.Equal(t, StatusError, downloads[0].Status)
	assert.Equal(t, "ffmpeg failed", downloads[0].Error)
}

func TestClearDownloads(t *testing.T) {
	database, err := OpenAt(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer database.Close()

	for i := 0; i < 3; i++ {
		_, err := InsertDownload(database, &Download{URL: "u", Status: StatusComplete})
		require.NoError(t, err)
	}

	removed, err := ClearDownloads(database)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)

	downloads, err := ListDownloads(database)
	require.NoError(t, err)
	assert.Empty(t, downloads)
}

func TestRecorderImplementsLifecycle(t *testing.T) {
	database, err := OpenAt(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer database.Close()

	rec := &Recorder{DB: database}

	id, err := rec.Started("u", "dQw4w9WgXcQ", "Test Video", "out.mp4", 0, 10, 2.0)
	require.NoError(t, err)

	require.NoError(t, rec.Completed(id, 2048))

	downloads, err := ListDownloads(database)
	require.NoError(t, err)
	require.Len(t, downloads, 1)
	assert.Equal(t, StatusComplete, downloads[0].Status)
	assert.Equal(t, int64(2048), downloads[0].Filesize)
}
