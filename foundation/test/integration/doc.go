// Package integration holds the cross-module tests of tantalum.
//
// Package: integration
// Title: tantalum Integration Tests
// Description: Tests that drive configuration, unit registry, expression
//              parser and quantity arithmetic together, the way an
//              application wires them.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of integration test suite
// - 2026-10-17 v0.2.0: Rewritten for the unit arithmetic modules
//
// Test Categories:
//
// Module Integration Tests (module_integration_test.go):
// - config file → registry definitions → parser → quantity → formatter
// - user units mixed with builtin units in one calculation
// - parser cache behavior across a pipeline
//
// Error Integration Tests (error_integration_test.go):
// - codes survive every module boundary (registry → parser → quantity)
// - module identifiers and severities of standard errors
// - errors.Is against template errors
//
// Performance Integration Tests (performance_test.go):
// - end-to-end parse, convert and format benchmarks
// - concurrent use of one registry and one parser
//
// Running:
//
//	go test ./foundation/test/integration/...
//	go test -bench=. ./foundation/test/integration/...
//
// The tests only use temporary files and need no external services.
package integration
