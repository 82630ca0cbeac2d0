// Package environment defines the deployment environments recognised by
// pagekit and a tolerant parser for their names.
//
// The environment decides two behaviours of the dispatcher: whether error
// envelopes carry stack traces and whether bootstrap scripts are cached.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	if env.IsDevelopment() {
//		// verbose diagnostics
//	}
package environment
