//go:build tools

package main

// Tool dependencies tracked in go.mod but not imported by the server.
import (
	_ "github.com/swaggo/swag/cmd/swag"
)
