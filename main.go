package main

import "github.com/pantrykit/apiserver/cmd"

func main() {
	cmd.Execute()
}
