// Command transmissionctl validates transmission descriptions, converts
// samples through them, and manages a local transmission catalog.
package main

import "github.com/mesh-intelligence/transmission/internal/cli"

func main() {
	cli.Execute()
}
