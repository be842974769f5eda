// Package dashboard implements the FASAM control loop.
//
// A Dashboard owns the alarm statistics and the log store and is the only
// writer of either. Each iteration it:
//
//  1. rotates the alarm window if the wall-clock hour changed
//  2. hands a read-only Snapshot to the Renderer
//  3. waits at most the remaining tick budget for a key from the InputSource
//  4. applies the key (q quit, t trigger, r reset)
//
// Rendering and keyboard input are collaborators behind interfaces so the
// loop runs unchanged against a terminal or against test doubles.
package dashboard
