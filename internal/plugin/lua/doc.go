// Package lua runs user-supplied cell formatter scripts.
//
// A formatter script is a Lua file that defines a global function
//
//	function format(value, row, col)
//	    return value:upper()
//	end
//
// which is called once for every cell of a grid before the table is
// compiled. Rows and columns are zero-based, matching table coordinates.
// Returning nil keeps the original value; any other value is converted
// with tostring semantics.
//
// # Sandbox
//
// Scripts run in a State with only the base, table, string and math
// libraries opened. dofile, loadfile, load and loadstring are removed, and
// require only resolves the built-in safe modules. Each call runs under an
// execution timeout enforced through the state's context.
package lua
