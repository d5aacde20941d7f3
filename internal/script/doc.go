// Package script loads user-defined formatting commands from Lua.
//
// A command script declares a global "commands" table; each entry binds a
// command name to a symmetric wrap marker and an optional placeholder
// used when the selection is empty:
//
//	commands = {
//	    { name = "strike", marker = "~~", placeholder = "strikethrough" },
//	    { name = "mark", marker = "==" },
//	}
//
// Scripts run in a restricted Lua state: the io, os, debug, and package
// libraries are not opened, so a command script cannot touch the file
// system or spawn processes.
package script
