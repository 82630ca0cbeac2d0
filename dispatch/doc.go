// Package dispatch turns every inbound HTTP exchange into exactly one
// response: a full HTML document, a string or JSON fragment, or a JSON
// error envelope.
//
// # Negotiation
//
// A request is a data (XHR) request when it carries X-Requested-With:
// XMLHttpRequest or HX-Request: true. It is an HTML request when its Accept
// header lists text/html. Only GET requests that are HTML and not XHR take
// the full-page path; conflicting signals resolve to the data path.
//
// # Full-page path
//
// The Renderer produces body markup and, while rendering, appends style and
// script declarations to ChunkParams.Assets and head tags to
// ChunkParams.HeadTags. The dispatcher wraps the markup in a document whose
// base href points at the versioned asset root, inlines two bootstrap
// scripts from the ScriptRepository and, on HTTP/2, pushes 103 Early Hints
// for every asset URL before the final write.
//
// A Renderer returning ErrNotFound yields 404 with the body "Page Not Found".
// Any other error or panic yields a 500 error envelope.
//
// # Data path
//
// The Processor returns a Result:
//
//	dispatch.Text("ok")                      // X-Response-Type: string
//	dispatch.JSON(map[string]any{"id": 1})   // X-Response-Type: json
//	dispatch.Fail(err)                       // 200, X-Response-Type: error
//	dispatch.Throw(err)                      // 400 error envelope
//
// # Error envelope
//
//	{"code":400,"name":"Error","message":"...","stack":""}
//
// The stack is filled only in development. In production, server faults
// are reported as "Internal Server Error".
//
// # Double writes
//
// Collaborators may end the response themselves. The dispatcher checks
// Response.Ended after every collaborator call and writes nothing more once
// it returns true.
package dispatch
