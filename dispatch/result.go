package dispatch

// ResultKind tags the shape of a Result.
type ResultKind uint8

const (
	// ResultJSON is serialized to JSON.
	ResultJSON ResultKind = iota
	// ResultText is written as plain text.
	ResultText
	// ResultError is converted into an error envelope.
	ResultError
)

// Result is what a Processor hands back to the data path: a string, a JSON
// serializable value or an error. The zero Result is JSON null.
type Result struct {
	kind   ResultKind
	text   string
	value  any
	err    error
	thrown bool
}

// Text returns a plain string result.
func Text(s string) Result {
	return Result{kind: ResultText, text: s}
}

// JSON returns a result serialized with encoding/json.
func JSON(v any) Result {
	return Result{kind: ResultJSON, value: v}
}

// Fail returns a soft error: the response keeps status 200 and is tagged
// with X-Response-Type: error. An err implementing IsThrow() bool that
// reports true is handled like Throw.
func Fail(err error) Result {
	return Result{kind: ResultError, err: err, thrown: isThrown(err)}
}

// Throw returns an error answered with status 400, unless a collaborator
// already set a non-default status.
func Throw(err error) Result {
	return Result{kind: ResultError, err: err, thrown: true}
}

// Kind returns the result tag.
func (r Result) Kind() ResultKind { return r.kind }

// String returns the text of a ResultText.
func (r Result) String() string { return r.text }

// Value returns the value of a ResultJSON.
func (r Result) Value() any { return r.value }

// Err returns the error of a ResultError.
func (r Result) Err() error { return r.err }

// Thrown reports whether the error should be answered as a client fault.
func (r Result) Thrown() bool { return r.thrown }
