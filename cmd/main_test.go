package cmd

import (
	"os"
	"testing"

	"github.com/kernel/steam-collections/internal/steam/steamtest"
)

func TestMain(m *testing.M) {
	steamtest.MaybeHoldLock()
	os.Exit(m.Run())
}
