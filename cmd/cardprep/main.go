// cardprep prepares promotional card photos for the tip articles: it
// detects and crops the card out of desk shots, verifies the result, and
// maintains the Tip_NNN folder layout.
package main

import "github.com/ironsheep/cardprep/cmd/cardprep/cmd"

// Version information - set by ldflags during build
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
