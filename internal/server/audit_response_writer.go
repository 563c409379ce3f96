package server

import (
	"bytes"
	"net/http"
)

// recordingWriter captures the status code and body of a response so the
// audit middleware can include them in the log entry.
type recordingWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func newRecordingWriter(w http.ResponseWriter) *recordingWriter {
	return &recordingWriter{ResponseWriter: w, status: http.StatusOK}
}

func (w *recordingWriter) WriteHeader(statusCode int) {
	w.status = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *recordingWriter) Status() int {
	return w.status
}

func (w *recordingWriter) Body() []byte {
	return w.body.Bytes()
}
