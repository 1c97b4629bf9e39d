// Command clock tracks work sessions: clock in, clock out, list, watch.
package main

import "github.com/rpggio/clock/internal/cli"

func main() {
	cli.Main()
}
