// Package formatter selects the Content-Type and caching headers of a
// response from its kind ("html", "txt", "json" or a file extension).
//
//	f := formatter.New(formatter.Config{MaxAge: time.Minute})
//	f.SetHeaders(w.Header(), "json")
package formatter
