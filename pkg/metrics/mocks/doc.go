// Package mocks holds testify mocks of Prometheus observer types.
package mocks
