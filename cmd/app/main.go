package main

import "sportshub-recruit-api/app"

func main() {
	app.Run()
}
