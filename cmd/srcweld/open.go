package main

import (
	"os/exec"
	"runtime"
)

// openOutput launches the platform's default opener on path. The process is
// started and not waited on; the opener owns the file from here.
func openOutput(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}
