package main

import (
	"fmt"
	"os"

	_ "taskmanager/docs"
)

// @title           Task Manager API
// @version         1.0
// @description     API for managing users, task statuses, labels and tasks.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
