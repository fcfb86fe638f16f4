package main

import "github.com/rustyeddy/folio/internal/cli"

func main() {
	cli.Execute()
}
