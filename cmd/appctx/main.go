package main

import "github.com/Station-Manager/appctx/cmd/appctx/cmd"

func main() {
	cmd.Execute()
}
