// Package kernel contains shared value objects used across the domain model.
//
// The package currently provides Money, the validated non-negative currency
// amount used for product prices and computed order values. Value objects in
// this package are immutable, compare by value, and enforce construction
// through factory functions using the constructor guard pattern.
package kernel
