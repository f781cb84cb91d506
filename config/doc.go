// Package config loads longdoc settings from a YAML file with environment
// variable overrides. All fields have working defaults; a missing config
// file is not an error.
package config
