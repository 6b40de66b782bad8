package main

import "github.com/Tawfiq06/MakeUofT/cmd"

func main() {
	cmd.Execute()
}
