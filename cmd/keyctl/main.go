package main

import "github.com/vietddude/keyctl/internal/cli"

func main() {
	cli.Execute()
}
