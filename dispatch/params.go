package dispatch

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// DefaultMaxBodySize bounds request bodies read by the default extractor (1 MiB).
const DefaultMaxBodySize int64 = 1 << 20

// QueryParams holds the request parameters, parsed once per request and
// read-only afterwards.
type QueryParams struct {
	// Body holds the parsed body. JSON objects keep their nested structure;
	// form fields map to a string, or []string when repeated; uploaded files
	// map to *multipart.FileHeader or []*multipart.FileHeader.
	Body map[string]any
	// Query holds the query string. Repeated keys keep the last value.
	Query map[string]string
}

// ParamsExtractor produces the QueryParams of a request.
type ParamsExtractor interface {
	Extract(r *http.Request) (QueryParams, error)
}

// ParamsExtractorFunc adapts a function to ParamsExtractor.
type ParamsExtractorFunc func(r *http.Request) (QueryParams, error)

// Extract implements ParamsExtractor.
func (f ParamsExtractorFunc) Extract(r *http.Request) (QueryParams, error) { return f(r) }

// BodyExtractor returns the default extractor. It understands JSON objects,
// urlencoded forms and multipart forms; other content types yield an empty
// body map. maxBody caps the body size; non-positive values use DefaultMaxBodySize.
func BodyExtractor(maxBody int64) ParamsExtractor {
	if maxBody <= 0 {
		maxBody = DefaultMaxBodySize
	}
	return ParamsExtractorFunc(func(r *http.Request) (QueryParams, error) {
		params := QueryParams{
			Body:  map[string]any{},
			Query: lastValues(r.URL.Query()),
		}
		if r.Body == nil || r.Body == http.NoBody {
			return params, nil
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return params, nil
		}
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			return params, errors.Wrapf(ErrInvalidBody, "malformed content type %q", contentType)
		}

		r.Body = http.MaxBytesReader(nil, r.Body, maxBody)

		switch {
		case mediaType == "application/json" || strings.HasSuffix(mediaType, "+json"):
			params.Body, err = decodeJSONObject(r.Body)
		case mediaType == "application/x-www-form-urlencoded":
			if err = r.ParseForm(); err == nil {
				params.Body = formValues(r.PostForm, nil)
			}
		case mediaType == "multipart/form-data":
			if err = r.ParseMultipartForm(maxBody); err == nil && r.MultipartForm != nil {
				params.Body = formValues(r.MultipartForm.Value, r.MultipartForm.File)
			}
		}
		if err != nil {
			return QueryParams{Body: map[string]any{}, Query: params.Query}, classifyBodyError(err)
		}
		return params, nil
	})
}

func decodeJSONObject(body io.Reader) (map[string]any, error) {
	var v any
	dec := json.NewDecoder(body)
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, err
	}
	switch obj := v.(type) {
	case map[string]any:
		return obj, nil
	case nil:
		return map[string]any{}, nil
	default:
		return nil, fmt.Errorf("expected a JSON object, got %T", v)
	}
}

func classifyBodyError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return errors.Wrapf(ErrBodyTooLarge, "limit is %d bytes", maxErr.Limit)
	}
	if errors.Is(err, ErrInvalidBody) {
		return err
	}
	return errors.Wrap(ErrInvalidBody, err.Error())
}

func lastValues(values url.Values) map[string]string {
	out := make(map[string]string, len(values))
	for key, vs := range values {
		if len(vs) > 0 {
			out[key] = vs[len(vs)-1]
		}
	}
	return out
}

func formValues(values map[string][]string, files map[string][]*multipart.FileHeader) map[string]any {
	out := make(map[string]any, len(values)+len(files))
	for key, vs := range values {
		switch len(vs) {
		case 0:
		case 1:
			out[key] = vs[0]
		default:
			out[key] = vs
		}
	}
	for key, fhs := range files {
		switch len(fhs) {
		case 0:
		case 1:
			out[key] = fhs[0]
		default:
			out[key] = fhs
		}
	}
	return out
}
