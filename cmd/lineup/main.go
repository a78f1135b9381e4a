package main

import "github.com/okian/lineup/internal/cli"

func main() {
	cli.Execute()
}
