// Package descriptor loads and writes the build descriptor: the project's
// coordinates, its declared dependencies and the build plugins with their
// configuration trees.
//
// The in-memory model is format-agnostic. Loaders exist for HCL (the primary
// format), YAML, TOML and JSON with comments; the effective descriptor is
// always written back as HCL.
package descriptor
