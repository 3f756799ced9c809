package main

import "subtrack_backend/internal/app"

func main() {
	app.Run()
}
