package httpapi

import (
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
)

type brotliWriter struct {
	http.ResponseWriter
	bw *brotli.Writer
}

func (w *brotliWriter) Write(p []byte) (int, error) {
	return w.bw.Write(p)
}

func (w *brotliWriter) WriteHeader(status int) {
	w.ResponseWriter.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(status)
}

// Brotli compresses responses for clients that accept "br".
func Brotli(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Accept-Encoding")
		if !acceptsBrotli(r.Header.Get("Accept-Encoding")) {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Content-Encoding", "br")
		bw := brotli.NewWriterLevel(w, brotli.DefaultCompression)
		defer bw.Close()

		next.ServeHTTP(&brotliWriter{ResponseWriter: w, bw: bw}, r)
	})
}

func acceptsBrotli(header string) bool {
	for _, part := range strings.Split(header, ",") {
		coding, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if !strings.EqualFold(strings.TrimSpace(coding), "br") {
			continue
		}
		return strings.ReplaceAll(strings.TrimSpace(params), " ", "") != "q=0"
	}
	return false
}
