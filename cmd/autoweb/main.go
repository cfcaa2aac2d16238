package main

import (
	"github.com/autoweb/autoweb/pkg/app"
)

const appName = "autoweb"

var (
	GitSha = "unknown"
	GitRef = "unknown"
)

func main() {
	app.Run(GitRef, GitSha, appName)
}
