package main

import "github.com/codeesasi/Ai-Media-Guardian/internal/cli"

func main() {
	cli.Execute()
}
