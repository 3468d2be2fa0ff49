/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/akshara-doc/SwaggerForge/cmd"

func main() {
	cmd.Execute()
}
