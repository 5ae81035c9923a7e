// Package flag reads global settings bound into viper by the cmd package.
package flag

import (
	"github.com/spf13/viper"
)

// Verbose returns option "--verbose".
func Verbose() int {
	return viper.GetInt("verbose")
}

// Quiet returns option "--quiet".
func Quiet() int {
	return viper.GetInt("quiet")
}

// GitHubActionEvent returns option "--github-action-event".
func GitHubActionEvent() string {
	return viper.GetString("github-action-event")
}

// ConfigFile returns option "--config".
func ConfigFile() string {
	return viper.GetString("config")
}

// FromCode returns the charset input files are converted from, set by
// option "--from-code" or "from_code" in the config file.
func FromCode() string {
	return viper.GetString("from-code")
}

// NoObsolete returns option "--no-obsolete".
func NoObsolete() bool {
	return viper.GetBool("no-obsolete")
}

// InPlace returns option "--in-place".
func InPlace() bool {
	return viper.GetBool("in-place")
}

// AssumeYes returns option "--yes".
func AssumeYes() bool {
	return viper.GetBool("yes")
}

// ExportFormat returns option "--format" of the export command, defaulting
// to "export.format" in the config file.
func ExportFormat() string {
	return viper.GetString("export.format")
}

// CommentSeparator returns "export.comment_separator" of the config file.
func CommentSeparator() string {
	return viper.GetString("export.comment-separator")
}
