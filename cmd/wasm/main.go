//go:build js && wasm

// Package main provides WASM bindings for the numeral converter.
// This lets browsers encode, decode and verify without a server.
package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/jmcpheron/ancient-number-converter/pkg/api"
)

func main() {
	// Export the request entry point and the per-operation shortcuts
	js.Global().Set("NumeralsRun", js.FuncOf(numeralsRun))
	js.Global().Set("NumeralsEncode", js.FuncOf(numberOp(api.OpEncode)))
	js.Global().Set("NumeralsVerify", js.FuncOf(numberOp(api.OpVerify)))
	js.Global().Set("NumeralsDecode", js.FuncOf(inputOp(api.OpDecode)))
	js.Global().Set("NumeralsLint", js.FuncOf(inputOp(api.OpLint)))
	js.Global().Set("NumeralsCompare", js.FuncOf(numeralsCompare))

	// Keep the Go runtime alive
	select {}
}

// numeralsRun is the JS-callable wrapper for api.Run()
// Usage: NumeralsRun(jsonString) -> { result: object, error?: string }
func numeralsRun(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return makeError("NumeralsRun requires 1 argument: jsonText")
	}

	result, err := api.Run(args[0].String())
	if err != nil {
		return makeError(err.Error())
	}
	return makeResult(result)
}

// numberOp wraps an operation taking a system and an integer.
// Usage: NumeralsEncode("roman", 1999) -> { result: object }
func numberOp(op api.Op) func(js.Value, []js.Value) any {
	return func(this js.Value, args []js.Value) any {
		if len(args) < 2 || args[1].Type() != js.TypeNumber {
			return makeError("requires 2 arguments: system, number")
		}
		n := args[1].Int()
		return handle(api.Request{Op: op, System: args[0].String(), Number: &n})
	}
}

// numeralsCompare writes one number in every system.
// Usage: NumeralsCompare(1999) -> { result: object }
func numeralsCompare(this js.Value, args []js.Value) any {
	if len(args) < 1 || args[0].Type() != js.TypeNumber {
		return makeError("NumeralsCompare requires 1 argument: number")
	}
	n := args[0].Int()
	return handle(api.Request{Op: api.OpCompare, Number: &n})
}

// inputOp wraps an operation taking a system and a line of symbols.
// Usage: NumeralsDecode("babylonian", "𒁹 | | 𒁹") -> { result: object }
func inputOp(op api.Op) func(js.Value, []js.Value) any {
	return func(this js.Value, args []js.Value) any {
		if len(args) < 2 {
			return makeError("requires 2 arguments: system, notation")
		}
		input, err := json.Marshal(args[1].String())
		if err != nil {
			return makeError(err.Error())
		}
		return handle(api.Request{Op: op, System: args[0].String(), Input: input})
	}
}

func handle(req api.Request) any {
	out, err := json.Marshal(api.Handle(req))
	if err != nil {
		return makeError(err.Error())
	}
	return makeResult(string(out))
}

// makeError creates a JS-friendly error response
func makeError(msg string) map[string]any {
	return map[string]any{
		"error": msg,
	}
}

// makeResult creates a JS-friendly success response
func makeResult(jsonStr string) map[string]any {
	// Parse the result to return as a JS object instead of string
	var result any
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		// Fall back to string if parsing fails
		return map[string]any{
			"result": jsonStr,
		}
	}

	return map[string]any{
		"result": result,
	}
}
