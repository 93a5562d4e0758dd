package httpclient

import (
	"net/http"
	"net/url"

	"github.com/goccy/go-json"
)

// Request describes one logical backend call. The same *Request must be
// passed again when a caller retries, so Retry survives between attempts.
type Request struct {
	Path      string
	Query     url.Values
	Body      interface{}
	Multipart *MultipartBody
	Header    http.Header

	// Retry is set once a 401 for this request has been handled.
	Retry bool
}

type MultipartBody struct {
	Fields map[string]string
	Files  []MultipartFile
}

type MultipartFile struct {
	FieldName   string
	FileName    string
	ContentType string
	Content     []byte
}

type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (r *Response) Decode(v interface{}) error {
	return json.Unmarshal(r.Body, v)
}
