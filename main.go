package main

import "github.com/courseql/courseql/cmd"

func main() {
	cmd.Execute()
}
