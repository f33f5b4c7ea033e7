package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStatusRecorder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		write      func(w http.ResponseWriter)
		wantStatus int
		wantBytes  int64
	}{
		{
			name:       "nothing written",
			write:      func(http.ResponseWriter) {},
			wantStatus: 0,
		},
		{
			name:       "implicit ok",
			write:      func(w http.ResponseWriter) { _, _ = w.Write([]byte("hello")) },
			wantStatus: http.StatusOK,
			wantBytes:  5,
		},
		{
			name: "first header wins",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusCreated)
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "bytes accumulate",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte("ab"))
				_, _ = w.Write([]byte("cde"))
			},
			wantStatus: http.StatusNotFound,
			wantBytes:  5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			sr := record(rec)
			tt.write(sr)

			if sr.Status() != tt.wantStatus {
				t.Errorf("Status() = %d, want %d", sr.Status(), tt.wantStatus)
			}
			if sr.bytes != tt.wantBytes {
				t.Errorf("bytes = %d, want %d", sr.bytes, tt.wantBytes)
			}
			if sr.Committed() != (tt.wantStatus != 0) {
				t.Errorf("Committed() = %v, want %v", sr.Committed(), tt.wantStatus != 0)
			}
			if tt.wantStatus != 0 && rec.Code != tt.wantStatus {
				t.Errorf("recorder Code = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRecord_ReusesWrapper(t *testing.T) {
	t.Parallel()

	outer := record(httptest.NewRecorder())
	if inner := record(outer); inner != outer {
		t.Error("record() wrapped an existing statusRecorder again")
	}
}

func TestStatusRecorder_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	if got := record(rec).Unwrap(); got != rec {
		t.Error("Unwrap() did not return the underlying writer")
	}
}
