// Package config manages user-level settings stored at ~/.nextkit/config.yaml.
// Values resolve flag > NEXTKIT_* environment > config file > default, and the
// file can be checked against an embedded JSON Schema with ValidateFile.
package config
