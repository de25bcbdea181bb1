//go:build !windows

package lineEnding

// Default is the line ending written to and expected at the end of ignore files.
const Default = "\n"
