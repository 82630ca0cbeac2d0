// Package i18n detects the preferred language of HTTP clients.
//
// Languages are read, in order, from a cookie, a query parameter, the
// non-standard Language header and Accept-Language. Negotiation against
// the supported languages uses golang.org/x/text/language, so regional
// variants match their base language and quality values are honored.
//
// # Usage
//
//	loc := i18n.NewLocalizer(i18n.Config{
//		DefaultLanguage:    "en",
//		SupportedLanguages: []string{"en", "fr", "de"},
//	})
//	r.Use(loc.Middleware())
//
//	// later, in a handler
//	lang := i18n.GetLocale(r.Context())
package i18n
