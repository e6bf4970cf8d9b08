// cmd/primecheck/main.go
package main

import (
	"primesieve/internal/app"
	"primesieve/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
