// Package source loads the raw inputs of configuration resolution: structured
// documents from the config directory and the KEY=VALUE dotfile.
//
// A document is looked up by its extension-less path; the first existing file
// among <path>.json, <path>.yaml, <path>.yml and <path> is decoded. Files
// without a known extension are decoded as JSON. Dotfiles are parsed with
// github.com/joho/godotenv, which owns quoting and comment rules.
package source
