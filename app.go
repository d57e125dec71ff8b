package main

import "github.com/sizetrack/sizetrack-go/cmd"

func main() {
	cmd.Run()
}
