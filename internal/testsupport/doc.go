// Package testsupport provides helpers shared by Slate tests: temp-directory
// configs and project stores with automatic cleanup.
package testsupport
