package pdfmeta

import (
	"errors"
	"log/slog"
	"sync"

	lpdf "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Binding is the resolved PDF capability: a page-count reader, an
// optional page writer, and whether any engine answered the probe.
// A read-only engine leaves ExtractPages nil.
type Binding struct {
	Engine       string
	PageCount    func(path string) (int, error)
	ExtractPages func(src, dst string, pages []string) error
	Available    bool
}

var (
	probeOnce sync.Once
	resolved  Binding
)

// Probe resolves the PDF engine binding. The probe runs once; every
// later call returns the same binding.
func Probe() Binding {
	probeOnce.Do(func() {
		resolved = probe()
		slog.Debug("pdf engine probed",
			slog.String("engine", resolved.Engine),
			slog.Bool("available", resolved.Available))
	})
	return resolved
}

func probe() Binding {
	b, err := pdfcpuBinding()
	if err == nil {
		return b
	}
	slog.Debug("primary pdf engine unavailable", slog.String("error", err.Error()))

	b, err = fallbackBinding()
	if err == nil {
		return b
	}
	slog.Debug("fallback pdf engine unavailable", slog.String("error", err.Error()))

	return Binding{Engine: "none"}
}

func pdfcpuBinding() (Binding, error) {
	conf := model.NewDefaultConfiguration()
	if conf == nil {
		return Binding{}, errors.New("pdfcpu configuration unavailable")
	}
	return Binding{
		Engine:    "pdfcpu",
		PageCount: api.PageCountFile,
		ExtractPages: func(src, dst string, pages []string) error {
			return api.TrimFile(src, dst, pages, conf)
		},
		Available: true,
	}, nil
}

func fallbackBinding() (Binding, error) {
	return Binding{
		Engine: "ledongthuc",
		PageCount: func(path string) (int, error) {
			f, r, err := lpdf.Open(path)
			if err != nil {
				return 0, err
			}
			defer f.Close()
			return r.NumPage(), nil
		},
		Available: true,
	}, nil
}
