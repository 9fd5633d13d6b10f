package main

import "jobmatch_backend/internal/app"

func main() {
	app.Run()
}
