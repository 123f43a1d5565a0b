// Command vecctl runs the policyvec demonstration scenarios with strategies
// chosen from flags, environment or a config file.
package main

func main() {
	execute()
}
