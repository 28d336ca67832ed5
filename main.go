package main

import "github.com/KostasZigo/gogitodb/cmd"

func main() {
	cmd.Execute()
}
