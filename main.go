package main

import "github.com/taliafield/simple-volunteer-log/cmd"

func main() {
	cmd.Execute()
}
