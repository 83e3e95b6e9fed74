package main

import "github.com/crashlens/crashlens/cmd"

func main() {
	cmd.Execute()
}
