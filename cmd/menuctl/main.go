package main

import "menu-cms-svc/cmd/menuctl/commands"

func main() {
	commands.Execute()
}
