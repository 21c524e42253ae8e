// Package factory provides the service factory pattern for creating music
// service instances. It includes builder registration, kind-based dispatch,
// the Provider facade, and registration of the default builders.
package factory
