// Timelined runs the timeline event scheduling service as a standalone
// daemon with an HTTP monitoring surface.
package main

import "github.com/wristlab/timeline/timelined/cmd"

func main() {
	cmd.Execute()
}
