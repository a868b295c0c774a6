package main

import "github.com/BGirlGlowHub/steward/cmd"

func main() {
	cmd.Execute()
}
