package main

import "github.com/nlevin/taskdeck/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	app.MustInitStorage()
	app.MustInitAuthService()

	app.MustListenAndServeHTTP()
}
