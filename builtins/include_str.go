package builtins

import (
	"os"
	"path/filepath"

	"lox/interp"
	"lox/types"
)

// includeStr reads the file at the given path, resolved relative to the
// running script's directory, and returns its contents as a string. A
// script launched from the REPL (no backing file) resolves relative to
// the process's working directory.
func includeStr(i *interp.Interpreter, args []types.Value) (types.Result, *types.RuntimeError) {
	path, ok := args[0].(types.String)
	if !ok {
		return types.Result{}, types.NewRuntimeError(i.CallLine(), "includeStr expects a string path.")
	}

	full := string(path)
	if !filepath.IsAbs(full) && i.ScriptDir != "" {
		full = filepath.Join(i.ScriptDir, full)
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return types.Result{}, types.NewRuntimeError(i.CallLine(), "Could not read file '%s': %s", string(path), err.Error())
	}
	return types.Ok(types.String(data)), nil
}
