package contact

import (
	"os"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// reset timers and client connections must not outlive a test
	defer goleak.VerifyTestMain(m)
	os.Exit(m.Run())
}
