package gen

import (
	"log/slog"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigDefaults(t *testing.T) {
	for name, c := range map[string]*Config{"nil": nil, "empty": {}} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, DefaultPackage, c.PackageName())
			assert.Equal(t, DefaultHeader, c.HeaderComment())
			assert.Equal(t, runtime.GOMAXPROCS(0), c.WorkerCount())
			assert.Same(t, slog.Default(), c.Log())
		})
	}
}

func TestPagination_String(t *testing.T) {
	assert.Equal(t, "sequential", PaginationSequential.String())
	assert.Equal(t, "legacy", PaginationLegacy.String())
	assert.Equal(t, "invalid", Pagination(7).String())
}
