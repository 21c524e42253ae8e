// Package types defines the core interfaces and data structures for the Music Provider Kit.
// It includes the service and builder contracts, service kinds, construction parameters,
// credential shapes, and the error taxonomy shared by the factory and all builders.
package types
