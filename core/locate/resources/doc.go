/*
Package resources resolves bitmap fonts for an application.

As resource loading may be a time-consuming task, functions in this
package work in an async/await fashion by returning a promise.
Functions named

	Resolve…(…)

will return a resource-specific promise type, which the client will call later
to receive the loaded resource. The call to the promise-function will then block
until loading has completed.

Fonts are searched for

  - in the global font registry
  - in the directories of configuration key "fontpath"
  - in the application's font cache directory
  - in the platform specific system and user font directories

Font files ending in ".yaml" or ".yml" are read as text fonts, all others as
binary fonts.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'pxfont.resources'.
func tracer() tracing.Trace {
	return tracing.Select("pxfont.resources")
}
