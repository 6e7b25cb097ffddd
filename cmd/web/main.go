package main

import "smmehub_backend/internal/app"

func main() {
	app.Run()
}
