// cmd/dnascan/main.go
package main

import (
	"dnascan/internal/app"
	"dnascan/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
