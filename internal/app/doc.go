// Package app contains the core application logic. It defines the main App
// struct and its configuration, and wires the loader, preset resolver, jest
// plugin, and workspace graph together, decoupled from any specific
// entrypoint like a CLI.
package app
