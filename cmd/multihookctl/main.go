// Command multihookctl inspects and builds multi-hook pool registers.
package main

func main() {
	execute()
}
