// Command cerny enumerates every complete automaton with a given number of letters and
// states and prints those whose shortest synchronizing word is at least a threshold.
package main

func main() {
	Execute()
}
