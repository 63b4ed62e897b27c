package main

import "github.com/swaykit/sway-session/cmd"

func main() {
	cmd.Execute()
}
