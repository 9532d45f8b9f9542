package rename

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Op identifies a rename step operation.
type Op string

const (
	OpRemoveText      Op = "Remove text"
	OpReplaceText     Op = "Replace text"
	OpInsertBeforeExt Op = "Insert before extension"
	OpChangeExt       Op = "Change extension"
	OpAppend          Op = "Append"
	OpPrepend         Op = "Prepend"
)

// Ops lists the selectable operations in menu order.
func Ops() []Op {
	return []Op{OpRemoveText, OpReplaceText, OpInsertBeforeExt, OpChangeExt, OpAppend, OpPrepend}
}

// Step is one stage of the rename pipeline. A and B are operation
// arguments; both may contain metadata tokens, expanded per file
// before the operation runs.
type Step struct {
	ID int    `toml:"-"`
	Op Op     `toml:"op"`
	A  string `toml:"a"`
	B  string `toml:"b,omitempty"`
}

// FileMeta carries the per-file values the token expander draws from.
type FileMeta struct {
	Path    string
	ModTime time.Time
	Size    int64
	Index   int // 1-based position within the batch
	Pages   func() (int, bool)
}

// tokenPattern matches {name}, {ext}, {size}, {pages}, {date},
// {date:LAYOUT}, {n} and {n:WIDTH}.
var tokenPattern = regexp.MustCompile(`\{(name|ext|date|size|pages|n)(?::([^{}]+))?\}`)

// ExpandTokens substitutes metadata tokens in s for the file described
// by original and meta. Unknown tokens are left untouched.
func ExpandTokens(s, original string, meta FileMeta) string {
	if !strings.Contains(s, "{") {
		return s
	}
	return tokenPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := tokenPattern.FindStringSubmatch(match)
		token, arg := parts[1], parts[2]

		switch token {
		case "name":
			return strings.TrimSuffix(original, filepath.Ext(original))
		case "ext":
			return strings.TrimPrefix(filepath.Ext(original), ".")
		case "date":
			layout := arg
			if layout == "" {
				layout = "20060102"
			}
			return meta.ModTime.Format(layout)
		case "size":
			return strconv.FormatInt(meta.Size, 10)
		case "pages":
			if meta.Pages == nil {
				return ""
			}
			n, ok := meta.Pages()
			if !ok {
				return ""
			}
			return strconv.Itoa(n)
		case "n":
			width, err := strconv.Atoi(arg)
			if err != nil || width < 1 {
				return strconv.Itoa(meta.Index)
			}
			return fmt.Sprintf("%0*d", width, meta.Index)
		}
		return match
	})
}

// ApplySteps runs the pipeline over original and returns the target
// filename. Steps run in order; each sees the output of the previous.
func ApplySteps(original string, steps []Step, meta FileMeta) string {
	if len(steps) == 0 {
		return original
	}
	name := original

	for _, s := range steps {
		a := ExpandTokens(s.A, original, meta)
		b := ExpandTokens(s.B, original, meta)

		switch s.Op {
		case OpRemoveText:
			if a != "" {
				name = strings.ReplaceAll(name, a, "")
			}
		case OpReplaceText:
			if a != "" {
				name = strings.ReplaceAll(name, a, b)
			}
		case OpInsertBeforeExt, OpAppend:
			base := strings.TrimSuffix(name, filepath.Ext(name))
			ext := filepath.Ext(name)
			name = base + a + ext
		case OpPrepend:
			base := strings.TrimSuffix(name, filepath.Ext(name))
			ext := filepath.Ext(name)
			name = a + base + ext
		case OpChangeExt:
			base := strings.TrimSuffix(name, filepath.Ext(name))
			newExt := strings.TrimSpace(a)
			if newExt == "" {
				name = base
			} else {
				if !strings.HasPrefix(newExt, ".") {
					newExt = "." + newExt
				}
				name = base + newExt
			}
		}
	}

	return strings.TrimSpace(name)
}
