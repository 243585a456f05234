// Package cache provides a small thread-safe LRU cache, used to memoize
// parsed brand configurations.
package cache
