package main

import (
	"fmt"
	"runtime/debug"

	"github.com/golangid/orderpush/codebase/app"
	"github.com/golangid/orderpush/config/env"
	"github.com/golangid/orderpush/internal/orderpush"
)

const (
	serviceName = "orderpush"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Failed to start %s service: %v\n", serviceName, r)
			fmt.Printf("Stack trace: \n%s\n", debug.Stack())
		}
	}()

	env.Load(serviceName)

	srv := orderpush.NewService(serviceName)
	app.New(srv).Run()
}
