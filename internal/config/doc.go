// Package config defines monitor settings and provides helpers to load,
// validate and save them in YAML format.
//
// The Config type covers the transition hooks, output mode, debounce gap,
// device selection and the optional MQTT broker. The settings file is
// optional; command-line flags override individual values.
package config
