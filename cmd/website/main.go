// cmd/website/main.go
//
// Entry point for the Payaana Holidays website. All application wiring
// lives in the bootstrap package; WAFFLE drives the lifecycle from
// config loading through graceful shutdown.
package main

import (
	"context"

	"github.com/dalemusser/waffle/app"
	"github.com/payaana/website/internal/app/bootstrap"
)

func main() {
	app.Run(context.Background(), bootstrap.Hooks)
}
