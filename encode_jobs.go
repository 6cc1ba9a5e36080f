package pricejobs

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// jobNamespace is the UUID namespace of job ids.
var jobNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/etnz/pricejobs/job"))

// ID returns a stable identifier of the job, derived from its pair and date:
// the same job always gets the same id, from one run to another.
func (p DatedPrice) ID() uuid.UUID {
	return uuid.NewSHA1(jobNamespace, []byte(p.Base+"/"+p.Quote+"@"+p.Date.String()))
}

// MarshalJSON implements json.Marshaler with a fixed key order.
func (s PriceSource) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("provider", s.Provider.String())
	w.Append("symbol", s.Symbol)
	w.Optional("invert", s.Invert)
	return w.MarshalJSON()
}

// MarshalJSON implements json.Marshaler with a fixed key order.
func (p DatedPrice) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", p.ID().String())
	w.Optional("base", p.Base)
	w.Optional("quote", p.Quote)
	w.Append("date", p.Date)
	w.Append("sources", p.Sources)
	return w.MarshalJSON()
}

// EncodeJobs writes the jobs to w in JSONL format.
func EncodeJobs(w io.Writer, jobs []DatedPrice) error {
	for _, job := range jobs {
		data, err := job.MarshalJSON()
		if err != nil {
			return fmt.Errorf("failed to marshal job %v: %w", job.Pair(), err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write job: %w", err)
		}
	}
	return nil
}
