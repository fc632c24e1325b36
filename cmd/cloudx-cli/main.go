package main

import "github.com/nfrund/cloudx/cmd/cloudx-cli/cmd"

func main() {
	cmd.Execute()
}
