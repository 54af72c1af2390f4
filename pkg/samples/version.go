// Package samples carries build-level facts about the samples module.
package samples

// Version is the released version of the samples module and CLI.
const Version = "0.1.0"

// ModulePath is the Go module path of this repository.
const ModulePath = "github.com/mesh-intelligence/samples"
