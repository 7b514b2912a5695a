// Package hcl_adapter is the concrete config.Loader. It reads declarative
// configuration documents written as JSON (jest.config.json, preset files,
// the "jest" key of package.json) or as native HCL, evaluates their top-level
// attributes to cty values, and translates those into config.Document.
//
// Configuration code (jest.config.js and friends) is never executed.
package hcl_adapter
