// Package config provides loading and validation of application configuration.
//
// Settings are loaded from optional YAML files and validated before use. The
// benchmark runs entirely from defaults when no file is given; the analysis
// requires a machine list file.
package config
