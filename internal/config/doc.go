// Package config loads, validates and persists the callhistory configuration.
//
// Values are resolved in order: built-in defaults, ~/.callhistory/config.yaml
// (or $CALLHISTORY_HOME/config.yaml), an optional --config overlay merged
// section by section, then CALLHISTORY_* environment variables.
package config
