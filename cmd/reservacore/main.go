package main

import "github.com/Leganyst/reserva-core/cmd"

func main() {
	cmd.Execute()
}
