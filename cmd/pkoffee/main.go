package main

import "github.com/arloliu/pkoffee/cmd/pkoffee/cmd"

func main() {
	cmd.Execute()
}
