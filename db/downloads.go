package db

import "database/sql"

// InsertDownload inserts a new download row and returns its ID.
func InsertDownload(db *sql.DB, d *Download) (int64, error) {
	result, err := db.Exec(
		`INSERT INTO downloads (url, video_id, title, start_seconds, end_seconds, speed, output_file, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		d.URL, d.VideoID, d.Title, d.StartSeconds, d.EndSeconds, d.Speed, d.OutputFile, d.Status,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// MarkDownloadComplete records a successful download and its output size.
func MarkDownloadComplete(db *sql.DB, id, filesize int64) error {
	_, err := db.Exec(
		`UPDATE downloads SET status = ?, filesize = ? WHERE id = ?`,
		StatusComplete, filesize, id,
	)
	return err
}

// MarkDownloadError records a failed download with the failure message.
func MarkDownloadError(db *sql.DB, id int64, message string) error {
	_, err := db.Exec(
		`UPDATE downloads SET status = ?, error = ? WHERE id = ?`,
		StatusError, message, id,
	)
	return err
}

// ListDownloads returns all recorded downloads, newest first.
func ListDownloads(db *sql.DB) ([]Download, error) {
	rows, err := db.Query(
		`SELECT id, url, video_id, title, start_seconds, end_seconds, speed, output_file, status,
		        COALESCE(error, ''), COALESCE(filesize, 0), created_at
		 FROM downloads ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var downloads []Download
	for rows.Next() {
		var d Download
		if err := rows.Scan(
			&d.ID, &d.URL, &d.VideoID, &d.Title, &d.StartSeconds, &d.EndSeconds,
			&d.Speed, &d.OutputFile, &d.Status, &d.Error, &d.Filesize, &d.CreatedAt,
		); err != nil {
			return nil, err
		}
		downloads = append(downloads, d)
	}
	return downloads, rows.Err()
}

// ClearDownloads deletes all recorded downloads and returns how many rows
// were removed.
func ClearDownloads(db *sql.DB) (int64, error) {
	result, err := db.Exec(`DELETE FROM downloads`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Recorder adapts the downloads table to the downloader's history hooks.
// It implements clip.History.
type Recorder struct {
	DB *sql.DB
}

func (r *Recorder) Started(url, videoID, title, output string, start, end, speed float64) (int64, error) {
	return InsertDownload(r.DB, &Download{
		URL:          url,
		VideoID:      videoID,
		Title:        title,
		StartSeconds: start,
		EndSeconds:   end,
		Speed:        speed,
		OutputFile:   output,
		Status:       StatusPending,
	})
}

func (r *Recorder) Completed(id, filesize int64) error {
	return MarkDownloadComplete(r.DB, id, filesize)
}

func (r *Recorder) Failed(id int64, message string) error {
	return MarkDownloadError(r.DB, id, message)
}
