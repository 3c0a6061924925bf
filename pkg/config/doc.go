// Package config loads typed configuration structs from environment
// variables.
//
// A .env file in the working directory is read once (missing files are
// ignored) and each struct type is parsed with caarlos0/env exactly once per
// process. Later calls for the same type return the cached copy, so every
// package can declare its own Config next to the code that uses it and the
// binary can load them independently:
//
//	var apiCfg imicapi.Config
//	config.MustLoad(&apiCfg)
package config
