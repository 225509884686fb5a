package main

import "github.com/masmgr/commit-summary-go/cmd"

func main() {
	cmd.Run()
}
