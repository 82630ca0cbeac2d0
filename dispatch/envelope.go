package dispatch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// DefaultErrorName is reported for errors that do not name themselves.
const DefaultErrorName = "Error"

// ErrorEnvelope is the JSON body of every error response.
type ErrorEnvelope struct {
	Code    int    `json:"code"`
	Name    string `json:"name"`
	Message string `json:"message"`
	Stack   string `json:"stack"`
}

// Error is a named error that processors may return. Thrown errors are
// answered with status 400; the others keep status 200.
type Error struct {
	Name    string
	Message string
	Thrown  bool
	cause   error
}

// NewError returns a named error carrying the caller's stack trace.
func NewError(name, message string) *Error {
	return &Error{Name: name, Message: message, cause: errors.New(message)}
}

// ThrowError is NewError with Thrown set.
func ThrowError(name, message string) *Error {
	e := NewError(name, message)
	e.Thrown = true
	return e
}

// WrapError names err, keeping it as the cause.
func WrapError(name string, err error, thrown bool) *Error {
	return &Error{Name: name, Message: err.Error(), Thrown: thrown, cause: withStack(err)}
}

func (e *Error) Error() string { return e.Message }

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.cause }

// ErrorName returns the name reported in envelopes.
func (e *Error) ErrorName() string {
	if e.Name == "" {
		return DefaultErrorName
	}
	return e.Name
}

// IsThrow reports whether the error is a client fault.
func (e *Error) IsThrow() bool { return e.Thrown }

// Format prints "Name: message" followed by the cause's stack for %+v.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%s: %s", e.ErrorName(), e.Message)
			if st, ok := e.cause.(interface{ StackTrace() errors.StackTrace }); ok {
				fmt.Fprintf(s, "%+v", st.StackTrace())
			} else if e.cause != nil && e.cause.Error() != e.Message {
				fmt.Fprintf(s, "\n%+v", e.cause)
			}
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, e.Message)
	case 'q':
		fmt.Fprintf(s, "%q", e.Message)
	}
}

// BuildEnvelope converts err into an envelope reporting code. The stack is
// included only in development, without its leading "Name: " prefix.
func BuildEnvelope(err error, code int, development bool) ErrorEnvelope {
	env := ErrorEnvelope{Code: code, Name: DefaultErrorName}
	if err == nil {
		env.Message = http.StatusText(code)
		return env
	}
	env.Name = errorName(err)
	env.Message = err.Error()
	if development {
		env.Stack = strings.TrimPrefix(fmt.Sprintf("%+v", err), env.Name+": ")
	}
	return env
}

// respondWithError writes the error envelope for err. Thrown errors get 400,
// others 200, but a status already customized by an earlier step is kept.
// X-Response-Type: error marks soft errors that left the status at 200.
func (d *Dispatcher) respondWithError(resp *Response, err error, thrown bool) {
	if resp.Ended() {
		return
	}

	code := http.StatusOK
	if thrown {
		code = http.StatusBadRequest
	}
	if resp.StatusCode() == http.StatusOK {
		resp.SetStatusCode(code)
	}

	d.formatter.SetHeaders(resp.Header(), KindJSON)
	if resp.StatusCode() == http.StatusOK {
		resp.SetHeader(HeaderResponseType, ResponseTypeError)
	}

	body, mErr := marshalJSON(BuildEnvelope(err, resp.StatusCode(), d.development))
	if mErr != nil {
		body = []byte(`{"code":500,"name":"Error","message":"Internal Server Error","stack":""}`)
	}
	_ = resp.End(string(body))
}

// marshalJSON encodes v without escaping <, > and &, so bodies match what
// browser-side JSON.stringify produces.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func errorName(err error) string {
	var named interface{ ErrorName() string }
	if errors.As(err, &named) {
		if name := named.ErrorName(); name != "" {
			return name
		}
	}
	return DefaultErrorName
}

func isThrown(err error) bool {
	var t interface{ IsThrow() bool }
	return errors.As(err, &t) && t.IsThrow()
}

// withStack attaches the caller's stack unless err already carries one.
func withStack(err error) error {
	if err == nil {
		return nil
	}
	var st interface{ StackTrace() errors.StackTrace }
	if errors.As(err, &st) {
		return err
	}
	return errors.WithStack(err)
}
