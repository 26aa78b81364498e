package main

import (
	"github.com/oshokin/mouse-sentry/cmd/mouse-sentry/cmd"
)

func main() {
	cmd.Execute()
}
