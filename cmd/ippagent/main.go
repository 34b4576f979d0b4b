package main

import (
	"github.com/aaronwong1989/goipp/agent"
)

func main() {
	agent.StartServer()
}
