package parser

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestParseProgramSnapshots re-serializes a handful of representative
// programs and checks the output against the stored snapshot (go-snaps
// records one on the first run when none exists), catching
// unintended changes to any node's String() rendering.
func TestParseProgramSnapshots(t *testing.T) {
	programs := map[string]string{
		"variable_declarations": `
			int32 x = 1;
			mutable int32 y;
			String s = "hi";
		`,
		"function_with_return": `
			int32 add(int32 a, int32 b) {
				return a + b * 2;
			}
		`,
		"class_with_access_specifiers": `
			class Point {
				int32 x;
				private:
				int32 y;
				public:
				int32 getX() { return x; }
			}
		`,
		"if_and_namespace": `
			namespace geometry {
				if (a == b) {
					int32 z = a + b;
				}
			}
		`,
	}

	for name, src := range programs {
		t.Run(name, func(t *testing.T) {
			program, err := Parse(src)
			if err != nil {
				t.Fatalf("Parse(%s) returned error: %v", name, err)
			}
			snaps.MatchSnapshot(t, program.String())
		})
	}
}
