// Package cache provides a generic, thread-safe LRU cache with optional
// time-based expiry. The scripts package keeps bootstrap script bodies in it.
//
//	c := cache.NewLRU[string, string](64, cache.WithTTL(10*time.Minute))
//	c.Put("routesFetcher.js", body)
//	body, ok := c.Get("routesFetcher.js")
package cache
