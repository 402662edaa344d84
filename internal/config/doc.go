// Package config loads flashdeck settings from defaults, an optional YAML
// file and FLASHDECK_-prefixed environment variables, and validates them
// with struct tags. Each subsystem reads only its own section: the HTTP
// server, the PostgreSQL pool, token signing, the text-generation provider,
// and the flashcard generation pipeline.
package config
