package main

import "github.com/bluekompass/bluekompass/cmd"

func main() {
	cmd.Execute()
}
