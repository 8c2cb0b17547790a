package main

import "github.com/dzjyyds666/dentry/cmd"

func main() {
	cmd.Execute()
}
