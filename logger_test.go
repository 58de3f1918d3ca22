package tessellate

import (
	"log/slog"
	"testing"
)

func TestSetLoggerRoundTrip(t *testing.T) {
	defer SetLogger(nil)

	custom := slog.Default()
	SetLogger(custom)
	if Logger() != custom {
		t.Error("Logger() did not return the logger set via SetLogger")
	}

	SetLogger(nil)
	if Logger() == custom {
		t.Error("SetLogger(nil) should restore the silent default, not keep the prior logger")
	}
}
