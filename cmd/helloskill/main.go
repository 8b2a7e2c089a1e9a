// Command helloskill is the hello-world placeholder skill. It exists to
// demonstrate how skills ship deterministic, repeatable programs an agent
// can call, and to give harnesses a trivial end-to-end check.
package main

import "fmt"

func main() {
	fmt.Println("Hello from the example skill helper!")
	fmt.Println("This program can be called by the agent when needed.")
}
