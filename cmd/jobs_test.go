package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/pricejobs"
	"github.com/etnz/pricejobs/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLedger = `{"directive":"open","date":"2024-01-01","account":"Assets:Broker"}
{"directive":"commodity","date":"2024-01-01","meta":{"price":"USD:yahoo/AAPL"},"currency":"AAPL"}
{"directive":"commodity","date":"2024-01-01","meta":{"price":"USD:google/^CURRENCY:USDINR"},"currency":"INR"}
{"directive":"txn","date":"2024-01-02","narration":"buy","postings":[{"account":"Assets:Broker","units":{"number":10,"currency":"AAPL"},"cost":{"number":150,"currency":"USD"}},{"account":"Assets:Cash","units":{"number":-1500,"currency":"USD"}}]}
{"directive":"price","date":"2024-02-01","currency":"AAPL","amount":{"number":155,"currency":"USD"}}
`

// newTestApp returns an app with the built-in providers and a ledger file
// holding content.
func newTestApp(t *testing.T, content string) *app {
	t.Helper()
	cfg := config.Default()
	cfg.Ledger = filepath.Join(t.TempDir(), "ledger.jsonl")
	require.NoError(t, os.WriteFile(cfg.Ledger, []byte(content), 0644))
	a, err := loadApp(cfg)
	require.NoError(t, err)
	return a
}

func pairs(jobs []pricejobs.DatedPrice) []string {
	var got []string
	for _, j := range jobs {
		got = append(got, j.Pair().String())
	}
	return got
}

func TestJobs(t *testing.T) {
	a := newTestApp(t, testLedger)

	tests := []struct {
		name string
		cmd  jobsCmd
		want []string
	}{
		{
			name: "latest active",
			cmd:  jobsCmd{},
			want: []string{"AAPL / USD"},
		},
		{
			name: "latest inactive",
			cmd:  jobsCmd{inactive: true},
			want: []string{"AAPL / USD", "INR / USD"},
		},
		{
			name: "existing price skipped",
			cmd:  jobsCmd{on: "2024-02-01"},
			want: nil,
		},
		{
			name: "existing price clobbered",
			cmd:  jobsCmd{on: "2024-02-01", clobber: true},
			want: []string{"AAPL / USD"},
		},
		{
			name: "before the purchase",
			cmd:  jobsCmd{on: "2024-01-02"},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, err := tt.cmd.jobs(a, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, pairs(jobs))
		})
	}
}

func TestJobs_MultipleLedgersAreSorted(t *testing.T) {
	dir := t.TempDir()
	later := filepath.Join(dir, "later.jsonl")
	earlier := filepath.Join(dir, "earlier.jsonl")
	require.NoError(t, os.WriteFile(later, []byte(`{"directive":"txn","date":"2024-01-02","postings":[{"account":"Assets:Broker","units":{"number":10,"currency":"AAPL"},"cost":{"number":150,"currency":"USD"}}]}`+"\n"), 0644))
	require.NoError(t, os.WriteFile(earlier, []byte(`{"directive":"commodity","date":"2024-01-01","meta":{"price":"USD:yahoo/AAPL"},"currency":"AAPL"}`+"\n"), 0644))

	a := newTestApp(t, "")
	c := jobsCmd{}
	jobs, err := c.jobs(a, []string{later, earlier})
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL / USD"}, pairs(jobs))
}

func TestJobs_Expressions(t *testing.T) {
	a := newTestApp(t, "")
	c := jobsCmd{expressions: true, on: "2024-03-01"}

	jobs, err := c.jobs(a, []string{"USD:yahoo/AAPL CAD:yahoo/AAPL.TO"})
	require.NoError(t, err)
	assert.Equal(t, []string{" / CAD", " / USD"}, pairs(jobs))

	_, err = c.jobs(a, []string{"USD:nowhere/AAPL"})
	assert.Error(t, err)
}

func TestJobs_Errors(t *testing.T) {
	a := newTestApp(t, "not json\n")

	c := jobsCmd{}
	_, err := c.jobs(a, nil)
	assert.Error(t, err, "invalid ledger")

	c = jobsCmd{on: "yesterday"}
	_, err = c.jobs(a, nil)
	assert.Error(t, err, "invalid date")

	c = jobsCmd{}
	_, err = c.jobs(a, []string{filepath.Join(t.TempDir(), "missing.jsonl")})
	assert.Error(t, err, "missing ledger")
}

func TestJobsPrint(t *testing.T) {
	a := newTestApp(t, testLedger)
	c := jobsCmd{inactive: true}
	jobs, err := c.jobs(a, nil)
	require.NoError(t, err)

	for _, format := range []string{"text", "json", "markdown"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			c.format = format
			require.NoError(t, c.print(&buf, jobs))

			lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			switch format {
			case "text":
				assert.Equal(t, []string{
					pricejobs.FormatDatedPrice(jobs[0]),
					pricejobs.FormatDatedPrice(jobs[1]),
				}, lines)
			case "json":
				assert.Len(t, lines, 2)
				assert.Contains(t, lines[1], `"provider":"builtin.google"`)
				assert.Contains(t, lines[1], `"invert":true`)
			case "markdown":
				assert.Equal(t, pricejobs.RenderMarkdown(jobs), buf.String(), "not a terminal, no rendering")
			}
		})
	}
	assert.False(t, validFormat("xml"))
}
