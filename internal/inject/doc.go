// Package inject makes the tool's runtime artifacts visible to the component
// that runs the tests. Three strategies exist: adding classpath elements to
// the test runner's configuration, declaring project dependencies, and
// unpacking the artifacts into the test-output directory.
//
// Which strategy applies is decided from a table of supported test runners
// (see Targets) or forced by an explicit Mode.
package inject
