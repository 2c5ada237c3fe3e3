// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"cmp"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	xslices "golang.org/x/exp/slices"
)

type Id int

const (
	ModuleRootNotFoundId Id = iota + 1
	MissingRuntimeId
	ConfigLoadFailedId
	ModuleSettingsInvalidId
	SetupScriptNotFoundId
	InterpreterNotFoundId
	TestRunFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink
	extLinks []HttpLink // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return xslices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return xslices.Clone(i.extLinks)
}

// Render renders the issue guide with the given glamour style ("auto", "dark",
// "light", "notty" or a path to a JSON style file).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
		for _, link := range i.extLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	moduleRootNotFoundIssue = &Issue{
		id: ModuleRootNotFoundId,
		mdMsg: `
# Module root not found!

modtest could not find the module you want to test.

## Things you can try:
- Pass the module directory explicitly:
~~~
$ modtest test --root path/to/module
~~~
- Run modtest from inside the module, so it can walk up to a directory containing
  ` + "`module_setup.py`" + `, ` + "`pyproject.toml`" + ` or ` + "`setup.py`" + `
- Add your own markers with ` + "`root_markers`" + ` in the modtest config file`,
	}

	missingRuntimeIssue = &Issue{
		id: MissingRuntimeId,
		mdMsg: `
# Module virtual environment not found!

Tests exist for this module, but its isolated Python runtime does not.
modtest never falls back to a global interpreter, so nothing was run.

## Things you can try:
- Run the module setup first:
~~~
$ modtest setup
~~~
- If the virtual environment lives elsewhere, point modtest at it:
~~~
$ modtest test --venv .venv-py312
~~~
- Or set ` + "`venv-dir`" + ` under ` + "`[tool.modtest]`" + ` in the module's pyproject.toml`,
		extLinks: []HttpLink{"https://docs.python.org/3/library/venv.html"},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The modtest configuration file could not be loaded.

## Things you can try:
- Check the CUE syntax of your config file
- Print the location modtest reads from:
~~~
$ modtest config path
~~~
- Recreate a default configuration:
~~~
$ modtest config init
~~~`,
		extLinks: []HttpLink{"https://cuelang.org/docs/"},
	}

	moduleSettingsInvalidIssue = &Issue{
		id: ModuleSettingsInvalidId,
		mdMsg: `
# Invalid module settings!

The module's pyproject.toml could not be read.

## Things you can try:
- Validate the TOML syntax of pyproject.toml
- Check the ` + "`[tool.modtest]`" + ` table: keys are ` + "`display-name`" + `, ` + "`tests-dir`" + `,
  ` + "`test-pattern`" + `, ` + "`venv-dir`" + `, ` + "`framework`" + `, ` + "`timeout-flag`" + ` and ` + "`default-timeout`",
		extLinks: []HttpLink{"https://packaging.python.org/en/latest/specifications/pyproject-toml/"},
	}

	setupScriptNotFoundIssue = &Issue{
		id: SetupScriptNotFoundId,
		mdMsg: `
# Base setup script not found!

Module setup delegates to a shared base script, which is expected next to the module
(by default ` + "`../base/module_setup.py`" + `).

## Things you can try:
- Check that the base module is checked out alongside this module
- Point modtest at the script with ` + "`setup.base_script`" + ` in the config file`,
	}

	interpreterNotFoundIssue = &Issue{
		id: InterpreterNotFoundId,
		mdMsg: `
# Python interpreter not found!

No ` + "`python3`" + ` or ` + "`python`" + ` executable was found on your PATH to run the setup script.

## Things you can try:
- Install Python 3 and make sure it is on your PATH
- Set ` + "`setup.python`" + ` in the config file to an explicit interpreter path`,
	}

	testRunFailedIssue = &Issue{
		id: TestRunFailedId,
		mdMsg: `
# Test run could not start!

The module runtime exists, but the test framework process could not be started.

## Things you can try:
- Check that the interpreter in the virtual environment is executable
- Recreate the virtual environment with ` + "`modtest setup`" + `
- Re-run with ` + "`--verbose`" + ` to see the full error chain`,
	}

	issues = map[Id]*Issue{
		moduleRootNotFoundIssue.Id():    moduleRootNotFoundIssue,
		missingRuntimeIssue.Id():        missingRuntimeIssue,
		configLoadFailedIssue.Id():      configLoadFailedIssue,
		moduleSettingsInvalidIssue.Id(): moduleSettingsInvalidIssue,
		setupScriptNotFoundIssue.Id():   setupScriptNotFoundIssue,
		interpreterNotFoundIssue.Id():   interpreterNotFoundIssue,
		testRunFailedIssue.Id():         testRunFailedIssue,
	}
)

// Values returns all catalog issues ordered by Id.
func Values() []*Issue {
	return slices.SortedFunc(maps.Values(issues), func(a, b *Issue) int {
		return cmp.Compare(a.id, b.id)
	})
}

func Get(id Id) *Issue {
	return issues[id]
}
