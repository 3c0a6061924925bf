package handler

import (
	"net/http"
	"strconv"
)

type blobResponse struct {
	data        []byte
	contentType string
	maxAge      int
}

func (b blobResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", b.contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(b.data)))
	if b.maxAge > 0 {
		w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(b.maxAge))
	}
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(b.data)
	return err
}

// Blob writes raw bytes such as a generated image. A positive maxAge
// (seconds) makes the response publicly cacheable.
func Blob(data []byte, contentType string, maxAge int) Response {
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return blobResponse{data: data, contentType: contentType, maxAge: maxAge}
}
