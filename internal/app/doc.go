// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the generation lifecycle (resolve config,
// scan, plan, build, verify, serialize, write), decoupled from any specific
// entrypoint like a CLI.
package app
