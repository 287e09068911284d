// Package config loads typed configuration structs from environment
// variables with struct tags, backed by an optional .env file for local
// development.
//
// Each configuration type is parsed once per process and cached, so
// packages can independently call Load for their own Config struct
// without coordinating initialization order:
//
//	var pgCfg pg.Config
//	config.MustLoad(&pgCfg)
package config
