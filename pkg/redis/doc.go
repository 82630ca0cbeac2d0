// Package redis connects to Redis with retries and exposes a readiness probe.
//
// pagekit only needs Redis when several server instances must agree on the
// asset-version token; see assetversion.RedisStore.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
package redis
