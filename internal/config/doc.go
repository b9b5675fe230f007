// Package config manages user-level settings stored at ~/.monogen/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the target root override used when scaffolding outside the default location.
package config
