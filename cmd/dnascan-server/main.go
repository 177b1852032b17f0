// cmd/dnascan-server/main.go
package main

import (
	"dnascan/internal/appshell"
	"dnascan/internal/serverapp"
)

func main() {
	appshell.Main(serverapp.RunContext)
}
