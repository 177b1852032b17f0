// cmd/dnascan-compare/main.go
package main

import (
	"dnascan/internal/appshell"
	"dnascan/internal/compareapp"
)

func main() {
	appshell.Main(compareapp.RunContext)
}
