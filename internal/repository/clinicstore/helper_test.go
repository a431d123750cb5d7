package clinicstore_test

import (
	"io"
	"time"

	"github.com/cliniccare/clinic-api/internal/storage"
	"github.com/cliniccare/clinic-api/pkg/logger"
	"github.com/cliniccare/clinic-api/pkg/metrics"
)

func testLogger() *logger.Logger {
	return logger.NewLogger(&logger.Config{
		Level:      logger.ErrorLevel,
		TimeFormat: time.RFC3339,
		Output:     io.Discard,
	})
}

func testDeps() (*storage.MemStore, *logger.Logger, *metrics.Metrics) {
	return storage.NewMemStore(), testLogger(), metrics.New("test")
}
