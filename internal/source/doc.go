// Package source reads source files as line-oriented text.
//
// Files are decoded as UTF-8 by default, but a leading byte order mark
// switches the decoder: UTF-8, UTF-16 LE, and UTF-16 BE BOMs are all
// recognized and removed. Editors in the C# ecosystem routinely save
// sources with a BOM, and a BOM left at the start of a combined document
// would land in the middle of it.
package source
