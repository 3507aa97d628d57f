// Package project expands a project-list file into the ordered list of
// source files to combine.
//
// The project list is a plain text file with one project manifest path per
// line; blank lines and lines starting with '#' are skipped. Each manifest
// is an XML project file whose <Compile Include="..."/> items name the
// compilable sources, in document order, relative to the manifest's
// directory. The resulting file order is significant: it is preserved
// exactly through the rest of the pipeline because downstream consumers may
// rely on files appearing in project order.
//
// File names on the ignore list (generated metadata files such as
// AssemblyInfo.cs) are filtered out here. The list is configuration, passed
// in by the caller, never a package constant.
package project
