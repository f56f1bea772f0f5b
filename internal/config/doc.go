// Package config loads server, database, auth, geocoding and upload settings
// with viper. Values come from defaults, an optional config.yaml in the working
// directory and PLACES_* environment variables, in increasing precedence, and
// are checked with validator struct tags before use.
package config
