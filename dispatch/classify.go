package dispatch

import (
	"mime"
	"net/http"
	"strconv"
	"strings"
)

// Request headers inspected by the classifier and the data path.
const (
	HeaderRequestedWith = "X-Requested-With"
	HeaderHXRequest     = "HX-Request"
	HeaderAjaxVersion   = "X-Ajax-Version"
	HeaderResponseType  = "X-Response-Type"
)

// Values of HeaderResponseType on the data path.
const (
	ResponseTypeString = "string"
	ResponseTypeJSON   = "json"
	ResponseTypeError  = "error"
)

// Mode is the negotiated shape of the response.
type Mode string

const (
	// ModeHTML produces a complete HTML document.
	ModeHTML Mode = "html"
	// ModeXHR produces a string or JSON fragment.
	ModeXHR Mode = "xhr"
)

// IsXHR reports whether m is the data mode.
func (m Mode) IsXHR() bool { return m == ModeXHR }

// IsHTML reports whether m is the full-page mode.
func (m Mode) IsHTML() bool { return m == ModeHTML }

// Negotiate collapses the two request signals into a single mode.
// Only "HTML and not XHR" selects ModeHTML; conflicting or absent signals
// fall back to ModeXHR.
func Negotiate(xhr, html bool) Mode {
	if html && !xhr {
		return ModeHTML
	}
	return ModeXHR
}

// Classify derives the mode of r from its headers.
func Classify(r *http.Request) Mode {
	return Negotiate(IsXHR(r), IsHTML(r))
}

// IsXHR reports whether r was issued by script: X-Requested-With set to
// XMLHttpRequest, or an htmx request.
func IsXHR(r *http.Request) bool {
	if strings.EqualFold(r.Header.Get(HeaderRequestedWith), "XMLHttpRequest") {
		return true
	}
	return r.Header.Get(HeaderHXRequest) == "true"
}

// IsHTML reports whether r accepts text/html (or XHTML) with a non-zero quality.
func IsHTML(r *http.Request) bool {
	for _, accept := range r.Header.Values("Accept") {
		for part := range strings.SplitSeq(accept, ",") {
			mediaType, params, err := mime.ParseMediaType(strings.TrimSpace(part))
			if err != nil {
				continue
			}
			if mediaType != "text/html" && mediaType != "application/xhtml+xml" {
				continue
			}
			if q, ok := params["q"]; ok {
				if v, err := strconv.ParseFloat(q, 64); err == nil && v <= 0 {
					continue
				}
			}
			return true
		}
	}
	return false
}
