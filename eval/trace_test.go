package eval

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"

	"github.com/susumu-lang/susumu/config"
	"github.com/susumu-lang/susumu/parser"
)

func TestTraceRecordsEveryArrowStep(t *testing.T) {
	p := parser.New("5 -> add <- 3 <- 2 -> multiply <- 10")
	prog := p.Parse()
	require.False(t, p.HasErrors(), p.Errors)

	var buf bytes.Buffer
	ev := New(&buf, config.Default())
	ev.EnableTracing()
	_, err := ev.Run(prog)
	require.NoError(t, err)

	entries := ev.TraceEntries()
	rendered := make([]string, len(entries))
	for i, e := range entries {
		rendered[i] = e.String()
	}
	snaps.MatchSnapshot(t, rendered)
}
