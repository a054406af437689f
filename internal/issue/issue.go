// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	SettingsCreatedId Id = iota + 1
	SettingsMalformedId
	StagingSourceMissingId
	ToolchainUnavailableId
	CompileFailedId
	CopyFailedId
	HostAppNotFoundId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to look up the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.extLinks) > 0 {
		extraMd += "\n\n## See also: "
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	settingsCreatedIssue = &Issue{
		id: SettingsCreatedId,
		mdMsg: `
# Settings file created!

A fresh settings file was written next to the ghforge executable. It
contains placeholder values that almost certainly do not match your machine.

## Before relaunching, review these keys:
- **toolchain_path**: full path to the IronPython executable (ipy.exe)
- **host_app_path**: full path to the Rhino executable
- **plugin_install_dir**: where built plugins get installed
- **build_output_dir**: where build artifacts are staged

ghforge will not build or launch anything until you relaunch it with a
reviewed settings file in place.`,
	}

	settingsMalformedIssue = &Issue{
		id: SettingsMalformedId,
		mdMsg: `
# Settings file could not be parsed!

The settings file exists but its content is not a valid settings document.
ghforge never falls back to defaults when a settings file is present.

## Things you can try:
- Check the error message above for the offending line
- Ensure the file is valid JSON with string values for all four keys
- Delete the file and relaunch to regenerate a fresh default:
~~~
$ rm ghforge_settings.json
$ ghforge build
~~~`,
	}

	stagingSourceMissingIssue = &Issue{
		id: StagingSourceMissingId,
		mdMsg: `
# Shared package not found!

The shared source package could not be staged into the plugin build tree
because its directory does not exist. No build was attempted.

## Things you can try:
- Verify the repository layout matches the project manifest
- Check the shared_package_source path in ghproject.toml
- Clone or restore the shared package directory`,
	}

	toolchainUnavailableIssue = &Issue{
		id: ToolchainUnavailableId,
		mdMsg: `
# Compiler toolchain unavailable!

The configured toolchain executable could not be located, so compilation
never started.

## Things you can try:
- Check the toolchain_path value in your settings file
- Verify the executable exists and is runnable:
~~~
$ ghforge config show
~~~
- Install IronPython and point toolchain_path at ipy.exe`,
	}

	compileFailedIssue = &Issue{
		id: CompileFailedId,
		mdMsg: `
# Build failed!

The toolchain ran but reported a compilation error. The full diagnostic
output is printed above.

## Things you can try:
- Fix the reported syntax or import errors in your plugin sources
- Run with verbose mode for the full toolchain invocation:
~~~
$ ghforge --verbose build
~~~`,
	}

	copyFailedIssue = &Issue{
		id: CopyFailedId,
		mdMsg: `
# Artifact copy failed!

The plugin compiled successfully but could not be copied to the configured
install location. The artifact is still available in the build output
directory.

## Things you can try:
- Check the plugin_install_dir value in your settings file
- Close the host application if it has the target file locked
- Copy the artifact manually from the build output directory`,
	}

	hostAppNotFoundIssue = &Issue{
		id: HostAppNotFoundId,
		mdMsg: `
# Host application not found!

The configured host application executable could not be started.

## Things you can try:
- Check the host_app_path value in your settings file
- Verify the application is installed at that path`,
	}

	issues = map[Id]*Issue{
		settingsCreatedIssue.Id():      settingsCreatedIssue,
		settingsMalformedIssue.Id():    settingsMalformedIssue,
		stagingSourceMissingIssue.Id(): stagingSourceMissingIssue,
		toolchainUnavailableIssue.Id(): toolchainUnavailableIssue,
		compileFailedIssue.Id():        compileFailedIssue,
		copyFailedIssue.Id():           copyFailedIssue,
		hostAppNotFoundIssue.Id():      hostAppNotFoundIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
