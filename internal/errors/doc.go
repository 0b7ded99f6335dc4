// Package errors provides structured, actionable error messages for htmlconv.
//
// Every error carries a code registered in this package, a category, a short
// message and optional detail, a source location and a fix suggestion. Errors
// with the same code match under errors.Is, so a registered code can serve as
// a sentinel:
//
//	var ErrInvalidInput = errors.New("H001")
//
//	err := errors.New("H001").WithDetail("got map[string]int")
//	stderrors.Is(err, ErrInvalidInput) // true
//
// # Error Categories
//
//   - input: the value handed to the converter cannot be converted
//   - convert: conversion stopped (depth limit, bad option)
//   - config: htmlconv.json could not be loaded or is invalid
//   - source: markup could not be read from a file, stdin or S3
//   - cli: command-line usage problems
//
// # Usage
//
//	err := errors.New("H011").
//	    WithLocation("htmlconv.json", 4, 12).
//	    WithSuggestion("Use one of: html, json")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR H011: Invalid configuration value
//	//
//	//   htmlconv.json:4:12
//	//
//	//       3 │   "trim": true,
//	//   →   4 │   "format": "yaml",
//	//         │            ^
//	//       5 │   "maxDepth": 0
//	//
//	//   Hint: Use one of: html, json
package errors
