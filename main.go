package main

import "prolync/internal/app"

// @title           Prolync API
// @version         1.0
// @description     Learning platform backend: auth with email OTP, courses, mentorship booking, coding practice and jobs.

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization

func main() {
	app.Run()
}
