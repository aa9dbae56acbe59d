package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps image uploads; blobs are stored inline in the database
const maxUploadBytes = 10 << 20

// readFormFile reads an optional multipart file field. present=false when the
// field was not sent at all.
func readFormFile(c *gin.Context, field string) (data []byte, contentType string, present bool, err error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, "", false, nil
		}
		return nil, "", false, err
	}

	if fileHeader.Size > maxUploadBytes {
		return nil, "", true, fmt.Errorf("file exceeds %d bytes", int64(maxUploadBytes))
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, "", true, err
	}
	defer f.Close()

	data, err = io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		return nil, "", true, err
	}
	if int64(len(data)) > maxUploadBytes {
		return nil, "", true, fmt.Errorf("file exceeds %d bytes", int64(maxUploadBytes))
	}

	return data, fileHeader.Header.Get("Content-Type"), true, nil
}

// idParam parses a positive int64 path parameter
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("invalid %s", name),
		})
		return 0, false
	}
	return id, true
}
