package main

import (
	"go.uber.org/fx"

	"github.com/soundvault/audiodeck-bot/internal/app"
)

func main() {
	fx.New(app.CreateApp()).Run()
}
