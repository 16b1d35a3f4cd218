// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates CLI flags into the application's internal configuration; values
// left unset fall through to the config file and the built-in defaults.
package cli
