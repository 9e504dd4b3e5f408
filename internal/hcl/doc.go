// Package hcl provides the HCL implementation of config.Loader. Files are
// parsed with hclparse, decoded with gohcl, and may reference environment
// variables as env.NAME.
package hcl
