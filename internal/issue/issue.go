// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error context (ActionableError) and a
// catalog of markdown-rendered help cards for the failures users hit most.
package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id identifies a catalog entry.
type Id int

const (
	AliasNotFoundId Id = iota + 1
	CatalogCorruptId
	ScopeOutOfRangeId
	TaskfileNotFoundId
	TaskNotFoundId
	ConfigLoadFailedId
	ShellNotFoundId
)

// Issue is a catalog entry: a markdown help card rendered on demand.
type Issue struct {
	id    Id
	mdMsg string
}

// Id returns the catalog identifier.
func (i *Issue) Id() Id { return i.id }

// MarkdownMsg returns the raw markdown text.
func (i *Issue) MarkdownMsg() string { return i.mdMsg }

// Render produces the terminal-styled form of the card.
func (i *Issue) Render() (string, error) {
	return render(i.mdMsg)
}

var (
	render = func(in string) (string, error) {
		return glamour.Render(in, "auto")
	}

	aliasNotFoundIssue = &Issue{
		id: AliasNotFoundId,
		mdMsg: `
# Alias not found

The name you invoked looks like an alias but nothing is stored under it.

## Things you can try:
- List the aliases visible from here:
~~~
$ reprise alias list
~~~
- Remember that ` + "`.name`" + ` aliases are scoped to the directory they
  were created in (and are found from its subdirectories)
- Create it:
~~~
$ reprise alias set .name task build
~~~`,
	}

	catalogCorruptIssue = &Issue{
		id: CatalogCorruptId,
		mdMsg: `
# Alias catalog is damaged

The alias catalog file exists but could not be read back as a valid
catalog. reprise never repairs or overwrites a damaged catalog on its own.

## Things you can try:
- Inspect the file (its path is in the error message above)
- Fix the reported entries by hand, or
- Delete the file to start from an empty catalog`,
	}

	scopeOutOfRangeIssue = &Issue{
		id: ScopeOutOfRangeId,
		mdMsg: `
# Alias scope out of range

Each leading dot past the first selects one more ancestor directory, and
the name you typed has more dots than the working directory has ancestors.

## Example:
- ` + "`.build`" + ` — this directory
- ` + "`..build`" + ` — the parent directory
- ` + "`...build`" + ` — the grandparent directory`,
	}

	taskfileNotFoundIssue = &Issue{
		id: TaskfileNotFoundId,
		mdMsg: `
# No reprisefile found

reprise looked for a reprisefile.cue but none of the search locations
had one.

## Search locations (in order):
1. The current directory
2. ~/.reprise/
3. Paths configured in your config file

## Things you can try:
- Create a starter file in the current directory:
~~~
$ reprise init
~~~`,
	}

	taskNotFoundIssue = &Issue{
		id: TaskNotFoundId,
		mdMsg: `
# Task not found

The task name is not defined in the reprisefile that was loaded.

## Things you can try:
- List the available tasks:
~~~
$ reprise task
~~~
- Check for typos in the task name`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration

The reprise configuration file could not be loaded.

## Configuration file locations:
- Linux: ~/.config/reprise/config.cue
- macOS: ~/Library/Application Support/reprise/config.cue
- Windows: %APPDATA%\reprise\config.cue

## Things you can try:
- Check the CUE syntax at the line reported above
- Remove the file to fall back to defaults`,
	}

	shellNotFoundIssue = &Issue{
		id: ShellNotFoundId,
		mdMsg: `
# Shell not found

No suitable shell was found for the 'native' runtime.

## Things you can try:
- Set the SHELL environment variable
- Install bash or another POSIX shell
- Switch the task to the built-in runtime:
~~~cue
runtime: "virtual"
~~~`,
	}

	issues = map[Id]*Issue{
		aliasNotFoundIssue.Id():    aliasNotFoundIssue,
		catalogCorruptIssue.Id():   catalogCorruptIssue,
		scopeOutOfRangeIssue.Id():  scopeOutOfRangeIssue,
		taskfileNotFoundIssue.Id(): taskfileNotFoundIssue,
		taskNotFoundIssue.Id():     taskNotFoundIssue,
		configLoadFailedIssue.Id(): configLoadFailedIssue,
		shellNotFoundIssue.Id():    shellNotFoundIssue,
	}
)

// Get returns the catalog entry for id, or nil when unknown.
func Get(id Id) *Issue {
	return issues[id]
}

// Values returns every catalog entry, ordered by id.
func Values() []*Issue {
	all := maps.Values(issues)
	slices.SortFunc(all, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return all
}
