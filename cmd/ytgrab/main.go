package main

import "github.com/ytgrab/ytgrab/internal/cli"

// version is set during build via -ldflags "-X main.version=X.Y.Z".
var version = "dev"

func main() {
	cli.Execute(version)
}
