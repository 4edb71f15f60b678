// Package gdrive wraps the Google Drive and Sheets APIs behind the narrow
// operations the workflow needs: finding and fetching flyer files, and
// reading and writing the order spreadsheet.
package gdrive

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
)

// File identifies one Drive file.
type File struct {
	ID   string
	Name string
}

// Drive wraps the Drive API client.
type Drive struct {
	svc *drive.Service
}

// NewDrive creates a Drive client using application default credentials.
func NewDrive(ctx context.Context) (*Drive, error) {
	svc, err := drive.NewService(ctx)
	if err != nil {
		return nil, fmt.Errorf("gdrive: creating drive service: %w", err)
	}
	return &Drive{svc: svc}, nil
}

// Search returns the files in a folder whose name contains nameContains and
// that were created on or after since, newest first.
func (d *Drive) Search(ctx context.Context, folderID, nameContains string, since time.Time) ([]File, error) {
	result, err := d.svc.Files.List().
		Q(searchQuery(folderID, nameContains, since)).
		Fields("nextPageToken, files(id, name)").
		OrderBy("createdTime desc").
		IncludeItemsFromAllDrives(true).
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("gdrive: searching folder %s: %w", folderID, err)
	}

	files := make([]File, 0, len(result.Files))
	for _, f := range result.Files {
		files = append(files, File{ID: f.Id, Name: f.Name})
	}
	return files, nil
}

// searchQuery builds the Drive query string for Search.
func searchQuery(folderID, nameContains string, since time.Time) string {
	conditions := []string{
		fmt.Sprintf("('%s' in parents)", folderID),
		fmt.Sprintf("(name contains '%s')", nameContains),
		fmt.Sprintf("(createdTime >= '%s')", since.Format("2006-01-02")),
	}
	return strings.Join(conditions, " and ")
}

// Download copies a file's content to w.
func (d *Drive) Download(ctx context.Context, fileID string, w io.Writer) error {
	resp, err := d.svc.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return fmt.Errorf("gdrive: downloading file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("gdrive: reading file %s: %w", fileID, err)
	}
	return nil
}

// UploadAsSpreadsheet uploads CSV content into a folder, converting it to a
// Google Sheet, and returns the new file's ID.
func (d *Drive) UploadAsSpreadsheet(ctx context.Context, folderID, name string, csv io.Reader) (string, error) {
	meta := &drive.File{
		Name:     name,
		Parents:  []string{folderID},
		MimeType: "application/vnd.google-apps.spreadsheet",
	}

	created, err := d.svc.Files.Create(meta).
		Media(csv, googleapi.ContentType("text/csv")).
		Fields("id").
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("gdrive: uploading %s: %w", name, err)
	}
	return created.Id, nil
}
