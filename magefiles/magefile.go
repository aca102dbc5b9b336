//go:build mage

// Package main provides build targets for the transmission project using Mage.
//
// Usage:
//
//	mage build     Compile transmissionctl to bin/
//	mage test      Run all tests
//	mage testRace  Run all tests with the race detector
//	mage cover     Run tests and write coverage.out
//	mage lint      Run golangci-lint
//	mage clean     Remove build artifacts
//	mage install   Install transmissionctl to GOPATH/bin
package main
