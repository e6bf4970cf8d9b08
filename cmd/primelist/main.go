// cmd/primelist/main.go
package main

import (
	"primesieve/internal/appshell"
	"primesieve/internal/listapp"
)

func main() {
	appshell.Main(listapp.RunContext)
}
