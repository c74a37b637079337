// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the fixed preparation sequence, decoupled
// from any specific entrypoint like a CLI or a build plugin.
package app
