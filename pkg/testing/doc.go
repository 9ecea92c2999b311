// Package testing provides a deterministic harness for carousel tests.
//
// # Quick Start
//
// Create a tester, drive events, pump frames, and assert on state:
//
//	func TestAdvance(t *testing.T) {
//	    tester := carouseltest.NewCarouselTester(t, carousel.Config{Items: items, Loop: true})
//	    tester.Drag(-80, 0)
//	    if err := tester.PumpAndSettle(5 * time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	    if got := tester.Carousel().Position(); got != 2 {
//	        t.Errorf("Position() = %d, want 2", got)
//	    }
//	}
//
// # Time
//
// The tester's engine reads a FakeClock. Pump advances it frame by frame
// and runs the engine after each step, so timers, frame callbacks and
// springs see the same sequence of instants on every run.
//
// # Snapshots
//
// CaptureSnapshot records position, phase, offset, flags and per-item
// projections. Compare two snapshots with Diff, or a snapshot with a YAML
// file with MatchesFile. Update files with:
//
//	CAROUSEL_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import carouseltest "github.com/go-drift/carousel/pkg/testing"
package testing
