package main

import "github.com/kasuboski/moviedb/cmd"

func main() {
	cmd.Execute()
}
