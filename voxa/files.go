package voxa

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// FilesService manages uploaded reference audio files.
type FilesService struct {
	client *Client
}

// File is an uploaded reference audio file.
type File struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Purpose   string    `json:"purpose"`
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}

// UploadParams describe a file upload. Content is read fully before the
// first attempt so retries resend identical bytes.
type UploadParams struct {
	Name     string
	Purpose  string
	Filename string
	Content  io.Reader
}

// Upload sends a reference audio file as multipart/form-data. The multipart
// writer supplies its own boundary content type.
func (s *FilesService) Upload(ctx context.Context, params UploadParams) (*File, error) {
	data, err := io.ReadAll(params.Content)
	if err != nil {
		return nil, fmt.Errorf("read upload content: %w", err)
	}

	var f File
	err = s.client.unaryInto(ctx, &request{
		op:     "files.upload",
		method: http.MethodPost,
		path:   "/v1/files",
		form: &multipartForm{
			fields: map[string]string{
				"name":    params.Name,
				"purpose": params.Purpose,
			},
			fileKey:  "file",
			filename: params.Filename,
			file:     data,
		},
	}, &f)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// List returns the account's uploaded files.
func (s *FilesService) List(ctx context.Context) ([]File, error) {
	var out struct {
		Files []File `json:"files"`
	}
	err := s.client.unaryInto(ctx, &request{
		op:     "files.list",
		method: http.MethodGet,
		path:   "/v1/files",
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.Files, nil
}

// Delete removes a file. The API answers 204 with no body.
func (s *FilesService) Delete(ctx context.Context, id string) error {
	return s.client.unaryInto(ctx, &request{
		op:     "files.delete",
		method: http.MethodDelete,
		path:   "/v1/files/" + url.PathEscape(id),
	}, nil)
}
