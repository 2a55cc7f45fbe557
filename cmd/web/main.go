package main

import "monprof_backend/internal/app"

func main() {
	app.Run()
}
