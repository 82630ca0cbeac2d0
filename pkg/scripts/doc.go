// Package scripts serves the bootstrap scripts inlined into every HTML
// document. Scripts come from a local directory (FSSource) or an S3 bucket
// (S3Source) and are cached in an LRU outside development.
//
//	repo := scripts.NewRepository(scripts.NewFSSource(os.DirFS("public/scripts")), cfg)
//	body, err := repo.Script(ctx, "routesFetcher.js")
package scripts
