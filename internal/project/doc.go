// Package project implements the filesystem side of momobuild: finding the
// project root, scaffolding a new project, removing build output, copying
// redistributables and collecting source files for the tagging tool.
//
// A project is any directory tree whose root contains the empty .topdir
// marker file. The layout created by Scaffold is:
//
//	.topdir
//	.gitignore
//	premake5.lua
//	src/main.cpp
//	include/
//	lib/
//	bin/Debug/
//	bin/Release/
//	build/        generated by premake5, holds <name>.sln
//
// Nothing in this package starts processes or prints; callers decide how to
// report what was done.
package project
