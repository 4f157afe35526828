package storage

import (
	"context"
	"mime/multipart"
)

// UploadFormFile streams a multipart file to the object store and returns its
// URL.
func UploadFormFile(ctx context.Context, u Uploader, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	return u.Upload(ctx, fh.Filename, fh.Header.Get("Content-Type"), f)
}
