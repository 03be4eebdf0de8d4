// @title           Soft Skills API
// @version         1.0
// @description     Blog, payments and analytics backend for the soft skills platform.
// @host            localhost:4000
// @BasePath        /api/v1

package main

import (
	"github.com/joho/godotenv"

	"github.com/Amsa221/softskills-project/internal/app"
)

func main() {
	// Missing .env is fine, the config loader falls back to defaults.
	_ = godotenv.Load()

	app.Run()
}
