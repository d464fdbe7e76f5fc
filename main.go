/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/ivannovs/tsmooth/cmd"

func main() {
	cmd.Execute()
}
