package main

import "github.com/mouse-blink/kata/cmd"

func main() {
	cmd.Execute()
}
