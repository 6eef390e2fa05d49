// Package config reads the example client's settings from FAILMAIL_*
// environment variables, optionally seeded from a dotenv file.
package config
