// Package types defines the Item record, the ItemTable and Store interfaces
// that storage backends implement, backend configuration, and the sentinel
// errors shared across the samples packages.
package types
