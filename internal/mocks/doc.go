// Package mocks provides hand-written test doubles for the service and
// store interfaces. They favor simple field-configured behavior over a
// mocking framework so tests read as plain Go.
package mocks
