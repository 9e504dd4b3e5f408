// Package app wires the bot together: it loads the configuration, builds the
// logger and the platform session, installs every feature and runs setup. It
// is decoupled from any specific entrypoint like the CLI.
package app
