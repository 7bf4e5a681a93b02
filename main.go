package main

import "github.com/oddsfeed/marketmerge/cmd"

func main() {
	cmd.Execute()
}
