package main

import (
	"napoop/internal/app"
	"napoop/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
