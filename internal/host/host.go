// SPDX-License-Identifier: MPL-2.0

// Package host starts and stops the host design application (Rhino). The
// build pipeline never depends on the host running; this exists so the
// operator can launch a freshly built plugin without leaving ghforge.
package host

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
)

// pluginUIScript asks the host to load and show the plugin editor on startup.
const pluginUIScript = `/runscript="_-Grasshopper Banner Disable Window Load Window Show _Enter"`

// Controller launches and terminates the host application process.
type Controller struct {
	// ExePath is the host application executable from the settings file.
	ExePath string

	// Logger reports launch and terminate events. Required.
	Logger *log.Logger
}

// Launch starts the host application and blocks until it exits. When
// loadPluginUI is set, the plugin editor window is opened on startup.
func (c *Controller) Launch(ctx context.Context, loadPluginUI bool) error {
	if c.ExePath == "" {
		return fmt.Errorf("no host application path configured")
	}

	c.Logger.Info("launching host application", "exe", c.ExePath)
	if loadPluginUI {
		c.Logger.Info("loading plugin editor")
	}

	cmd := exec.CommandContext(ctx, c.ExePath, launchArgs(loadPluginUI)...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("host application failed: %w", err)
	}

	c.Logger.Info("host application exited")
	return nil
}

// Kill force-terminates all host application processes. Best-effort: a
// host that is not running is not an error worth surfacing.
func (c *Controller) Kill(ctx context.Context) error {
	if c.ExePath == "" {
		return fmt.Errorf("no host application path configured")
	}

	name, args := killCommand(runtime.GOOS, c.ExePath)
	c.Logger.Info("terminating host application", "exe", exeBase(c.ExePath))

	if err := exec.CommandContext(ctx, name, args...).Run(); err != nil {
		c.Logger.Warn("terminate reported an error", "err", err)
	}
	return nil
}

// launchArgs builds the host startup argument list.
func launchArgs(loadPluginUI bool) []string {
	args := []string{"/nosplash"}
	if loadPluginUI {
		args = append(args, pluginUIScript)
	}
	return args
}

// killCommand returns the platform process-terminate invocation for the
// host executable.
func killCommand(goos, exePath string) (string, []string) {
	base := exeBase(exePath)
	if goos == "windows" {
		return "taskkill", []string{"/im", base, "/t", "/f"}
	}
	return "pkill", []string{"-f", base}
}

// exeBase extracts the executable base name. Settings files may carry
// Windows-style paths, so both separators are recognized.
func exeBase(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}
