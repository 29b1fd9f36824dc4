package main

import "github.com/benboone2/Radia-AI-chat-UI/cmd"

func main() {
	cmd.Execute()
}
