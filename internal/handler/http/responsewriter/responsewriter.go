// Package responsewriter captures what a handler actually sent: the final
// status code and the body size. The logging and metrics middleware both
// need those after the fact, and net/http does not expose them.
package responsewriter

import "net/http"

// ResponseWriter records the response outcome while delegating all writes.
// A zero status means no header has been sent yet.
type ResponseWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

// Wrap returns a recording wrapper around w.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{ResponseWriter: w}
}

// WriteHeader sends the header once; later calls are dropped, mirroring
// net/http's superfluous-WriteHeader behavior without the log noise.
func (w *ResponseWriter) WriteHeader(code int) {
	if w.status != 0 {
		return
	}
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Write counts body bytes, sending the implicit 200 first when the handler
// never called WriteHeader.
func (w *ResponseWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

// StatusCode returns the sent status, or 200 when nothing was written,
// matching what the client would observe.
func (w *ResponseWriter) StatusCode() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// BytesWritten returns the number of body bytes written so far.
func (w *ResponseWriter) BytesWritten() int {
	return w.bytes
}

// Unwrap exposes the wrapped writer so http.ResponseController keeps working.
func (w *ResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
