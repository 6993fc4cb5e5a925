package telemetry

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestInitTracing(t *testing.T) {
	var buf bytes.Buffer
	shutdown, err := InitTracing(&buf, "test")
	require.NoError(t, err)

	_, span := otel.Tracer("telemetry_test").Start(context.Background(), "salesextract.ExtractFile")
	span.End()
	require.NoError(t, shutdown(context.Background()))

	assert.Contains(t, buf.String(), "salesextract.ExtractFile")
	assert.Contains(t, buf.String(), ServiceName)
}

func TestWriteMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	files := prometheus.NewCounter(prometheus.CounterOpts{Name: "salesextract_files_total", Help: "test"})
	reg.MustRegister(files)
	files.Add(3)

	path := filepath.Join(t.TempDir(), "salesextract.prom")
	require.NoError(t, WriteMetrics(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "salesextract_files_total 3")
}

func TestWriteMetricsBadPath(t *testing.T) {
	err := WriteMetrics(filepath.Join(t.TempDir(), "missing", "x.prom"), prometheus.NewRegistry())
	assert.Error(t, err)
}
