// cmd/pepfilter-index/main.go
package main

import (
	"pepfilter/internal/appshell"
	"pepfilter/internal/indexapp"
)

func main() {
	appshell.Main(indexapp.RunContext)
}
