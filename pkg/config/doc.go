// Package config loads typed configuration structs from environment
// variables, with optional .env support for local development.
//
// Configs are plain structs with `env` tags:
//
//	type ServerConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
//
// Each config type is parsed once per process and cached, so the same
// struct can be loaded independently by every package that needs it.
package config
