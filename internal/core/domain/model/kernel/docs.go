// Package kernel contains shared value objects used across the domain model.
// Currently this is the UUID identifier wrapper, which guarantees that entity
// identifiers are always explicitly constructed and never zero values.
package kernel
