// Package assetversion computes the token that versions public assets.
// Documents set their base href to /{version}/, so a deploy that changes
// any asset changes every asset URL.
//
// The token is a truncated SHA-256 over the asset tree. Several server
// instances agree on one token by sharing it through a Store; RedisStore
// keeps it in Redis with SET NX so the first instance to compute it wins.
//
//	m := assetversion.NewManager(os.DirFS("public"), cfg,
//		assetversion.WithStore(assetversion.NewRedisStore(client, cfg.RedisKey, cfg.RedisTTL)),
//	)
//	v, err := m.Version(ctx)
package assetversion
