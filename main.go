package main

import "github.com/masnyjimmy/reqdoc/cmd"

func main() {
	cmd.Execute()
}
