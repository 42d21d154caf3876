// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package media

import (
	"fmt"
	"os/exec"
	"runtime"
)

// OpenExternal launches the platform's default opener on a URL, detached
// from this process. This is the download affordance: the resource is opened
// in an external context and never fetched through the client itself, so
// cross-origin URLs work without any proxying.
func OpenExternal(url string) error {
	if url == "" {
		return fmt.Errorf("no url to open")
	}

	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		// Quoted empty string is the window title; the URL must be last.
		cmd = exec.Command("cmd", "/c", "start", `""`, url)
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
