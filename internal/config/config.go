// Package config loads the songbook configuration from an HCL file.
//
// A songbook file names the book metadata and the sections to assemble:
//
//	songbook {
//	  title      = "Campfire Songs"
//	  sbd_header = "% generated songfile\n"
//	}
//
//	section "worship" {
//	  files = ["songs/worship"]
//	  sort  = "filename"
//	}
//
// Sections keep their declaration order. Relative file entries are resolved
// against the config file's directory by the assembler.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the decoded songbook configuration.
type Config struct {
	Songbook *Songbook  `hcl:"songbook,block"`
	Sections []*Section `hcl:"section,block"`

	// BasePath is the directory of the config file; relative section file
	// entries resolve against it.
	BasePath string
}

// Songbook holds book-level settings.
type Songbook struct {
	Title string `hcl:"title,optional"`

	// SBDHeader is written verbatim at the top of the assembled song file.
	SBDHeader string `hcl:"sbd_header,optional"`
}

// Section is one chapter of the book.
type Section struct {
	Name string `hcl:"name,label"`

	// Files lists song files and directories; directories are expanded
	// one level at assembly time.
	Files []string `hcl:"files"`

	// Sort names an ordering for the expanded file list. "filename" is
	// the only recognized directive; anything else is logged and ignored.
	Sort string `hcl:"sort,optional"`

	// IntroFile is an optional section introduction, passed through to
	// the outer typesetting templates.
	IntroFile string `hcl:"intro_file,optional"`
}

// Load parses and decodes a songbook config file.
func Load(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, diags)
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, diags)
	}

	cfg.BasePath = filepath.Dir(path)
	return &cfg, nil
}
