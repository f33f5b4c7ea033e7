package middleware

import "net/http"

// statusRecorder remembers the status and body size a handler produced.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int64
}

// record wraps w, reusing w when an outer middleware already wrapped it so
// that every layer sees the same status.
func record(w http.ResponseWriter) *statusRecorder {
	if sr, ok := w.(*statusRecorder); ok {
		return sr
	}
	return &statusRecorder{ResponseWriter: w}
}

// Status returns the status sent to the client, 200 for an implicit header
// and 0 when nothing has been written yet.
func (sr *statusRecorder) Status() int {
	return sr.status
}

// Committed reports whether the header has gone out.
func (sr *statusRecorder) Committed() bool {
	return sr.status != 0
}

func (sr *statusRecorder) WriteHeader(code int) {
	if sr.Committed() {
		return
	}
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if !sr.Committed() {
		sr.status = http.StatusOK
	}
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}
