// Package common provides shared utilities for music service builders:
// the singleton slot caching builders keep their instance in, instance
// identifiers, and logger defaults.
package common
