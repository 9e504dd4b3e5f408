package hcl

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/porygon/internal/config"
	"github.com/specialistvlad/porygon/internal/ctxlog"
	"github.com/specialistvlad/porygon/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// Loader is the HCL implementation of config.Loader.
type Loader struct {
	// Environ defaults to os.Environ. Its entries are exposed as env.NAME.
	Environ func() []string
}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{Environ: os.Environ}
}

// Load implements config.Loader. Each path is a .hcl file or a directory
// searched recursively; files are applied in sorted order per path.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Bot, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to find config files in %s: %w", path, err)
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl config files found in %s", strings.Join(paths, ", "))
	}

	evalCtx := l.evalContext()
	parser := hclparse.NewParser()
	bot := config.Default()

	for _, file := range files {
		logger.Debug("Loading config file.", "path", file)

		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var parsed botFile
		if diags := gohcl.DecodeBody(hclFile.Body, evalCtx, &parsed); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}
		if err := translate(&parsed, bot); err != nil {
			return nil, fmt.Errorf("invalid config in %s: %w", file, err)
		}
	}

	if err := bot.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("Configuration loaded.", "files", len(files), "environment", bot.Environment)
	return bot, nil
}

// evalContext exposes the process environment as env.NAME plus a few string
// helpers.
func (l *Loader) evalContext() *hcl.EvalContext {
	environ := l.Environ
	if environ == nil {
		environ = os.Environ
	}

	vars := make(map[string]cty.Value)
	for _, kv := range environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = cty.StringVal(value)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
		Functions: map[string]function.Function{
			"coalesce":  stdlib.CoalesceFunc,
			"lower":     stdlib.LowerFunc,
			"upper":     stdlib.UpperFunc,
			"trimspace": stdlib.TrimSpaceFunc,
		},
	}
}
