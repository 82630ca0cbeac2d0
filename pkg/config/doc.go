// Package config loads typed configuration structs from the environment.
//
// It combines github.com/joho/godotenv for optional dotenv files with
// github.com/caarlos0/env for tag-driven parsing. Every pagekit package that
// needs settings exposes a Config struct with `env` tags; the command wires
// them with Load:
//
//	var httpCfg httpserver.Config
//	config.MustLoad(&httpCfg)
//
//	var scriptsCfg scripts.Config
//	if err := config.Load(&scriptsCfg, config.WithPrefix("PAGEKIT_")); err != nil {
//		return err
//	}
package config
