package controller

import (
	"io"
	"mime/multipart"
	"strings"

	"github.com/azor-ahai1/SwapSpace/pkg/errs"
	"github.com/labstack/echo/v4"
)

const maxProductImages = 4

// formFileReader opens a single optional multipart file field. A missing
// field is not an error and yields a nil reader.
func formFileReader(e echo.Context, field string) (io.Reader, error) {
	fileHeader, err := e.FormFile(field)
	if err != nil {
		return nil, nil
	}

	return openImage(fileHeader)
}

// formFileReaders opens every file attached to a multipart field, capped
// at limit.
func formFileReaders(e echo.Context, field string, limit int) ([]io.Reader, error) {
	form, err := e.MultipartForm()
	if err != nil {
		return nil, nil
	}

	readers := []io.Reader{}
	for _, fileHeader := range form.File[field] {
		if len(readers) == limit {
			break
		}

		file, err := openImage(fileHeader)
		if err != nil {
			return nil, err
		}
		readers = append(readers, file)
	}

	return readers, nil
}

func openImage(fileHeader *multipart.FileHeader) (io.Reader, error) {
	if !strings.HasPrefix(fileHeader.Header.Get("Content-Type"), "image/") {
		return nil, errs.ErrNotAnImage
	}

	return fileHeader.Open()
}
