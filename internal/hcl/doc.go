// Package hcl provides the concrete HCL implementation of config.Loader. It
// is responsible for parsing generator config files, translating their blocks
// into the format-agnostic config.Generator, and the cty-to-Go conversion of
// list-valued attributes such as colors and category lists.
package hcl
