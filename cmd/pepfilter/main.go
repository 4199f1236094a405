// cmd/pepfilter/main.go
package main

import (
	"pepfilter/internal/app"
	"pepfilter/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
