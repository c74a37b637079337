// Package registry provides the central "glue" for the framework setup
// modules.
//
// Each module contributes named setup functions that prepare the test-output
// directory for one test framework or logging integration. The registry
// keeps them in registration order, which is the order they run in, and is
// validated at startup so that a broken module fails before any file is
// touched.
package registry
