package main

import "github.com/user/ytclip/cmd"

func main() {
	cmd.Execute()
}
