// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package inspect reads PDF preflight metadata with pdfcpu, without
// running any extraction strategy.
package inspect

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	pdftypes "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Metadata describes a PDF file without its content.
type Metadata struct {
	SourceFile string `json:"source_file"`
	FileSize   int64  `json:"file_size"`
	PageCount  int    `json:"page_count"`
	Encrypted  bool   `json:"encrypted"`
	Title      string `json:"title,omitempty"`
	Author     string `json:"author,omitempty"`
	Subject    string `json:"subject,omitempty"`
	Creator    string `json:"creator,omitempty"`
	Producer   string `json:"producer,omitempty"`
}

// Inspect validates the file with pdfcpu and returns its metadata.
func Inspect(path string) (*Metadata, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}

	m := &Metadata{
		SourceFile: filepath.Base(path),
		FileSize:   info.Size(),
		PageCount:  ctx.PageCount,
		Encrypted:  ctx.Encrypt != nil,
	}

	if d := infoDict(ctx); d != nil {
		m.Title = stringEntry(d, "Title")
		m.Author = stringEntry(d, "Author")
		m.Subject = stringEntry(d, "Subject")
		m.Creator = stringEntry(d, "Creator")
		m.Producer = stringEntry(d, "Producer")
	}
	return m, nil
}

// infoDict dereferences the document information dictionary, if any.
func infoDict(ctx *model.Context) pdftypes.Dict {
	if ctx.Info == nil {
		return nil
	}
	d, err := ctx.DereferenceDict(*ctx.Info)
	if err != nil {
		return nil
	}
	return d
}

func stringEntry(d pdftypes.Dict, key string) string {
	if v := d.StringEntry(key); v != nil {
		return *v
	}
	return ""
}
