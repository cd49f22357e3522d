package synth

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	hl "github.com/anaypant119/har2openapi/har_loader"
	"github.com/anaypant119/har2openapi/printer"
)

const errorSampleCount = 3

// entryErrors collects a bounded sample of per-entry failures so a noisy
// capture does not flood the operator.
type entryErrors struct {
	Total   int
	Samples []error
}

func (e *entryErrors) add(err error) {
	e.Total++
	if len(e.Samples) < errorSampleCount {
		e.Samples = append(e.Samples, err)
	}
}

// ProcessHARFile loads one capture file and folds its entries into the run.
// A file that cannot be parsed at all fails the run; individual entries with
// problems are skipped and reported as samples.
func (r *Run) ProcessHARFile(path string) error {
	harContent, err := hl.LoadCustomHARFromFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to load HAR file %s", path)
	}

	// One capture id per file, for correlating debug output.
	captureID := uuid.New()
	printer.Debugf("Processing %d entries from %s (capture %s)\n",
		len(harContent.Log.Entries), path, captureID)

	var errs entryErrors
	success := 0
	for i, entry := range harContent.Log.Entries {
		tx, err := transactionFromEntry(entry)
		if err != nil {
			printer.Debugf("%s\n", errors.Wrapf(err, "failed to convert HAR entry, capture=%s index=%d", captureID, i))
			errs.add(err)
			continue
		}
		r.Add(tx)
		success++
	}

	if errs.Total > 0 {
		printer.Stderr.Warningf("Encountered errors with %d HAR file entries.\n", errs.Total)
		printer.Stderr.Warningf("Entries with errors are ignored; the spec is generated from the %d entries successfully processed.\n", success)
		printer.Stderr.Warningf("Sample errors:\n")
		for _, e := range errs.Samples {
			printer.Stderr.Warningf("\t- %s\n", e)
		}
	}
	return nil
}

func transactionFromEntry(entry hl.CustomHAREntry) (Transaction, error) {
	if entry.Request == nil {
		return Transaction{}, errors.New("HAR entry has no request")
	}

	tx := Transaction{
		Method: entry.Request.Method,
		URL:    entry.Request.URL,
	}
	for _, q := range entry.Request.QueryString {
		tx.Query = append(tx.Query, QueryParam{Name: q.Name, Value: q.Value})
	}
	if pd := entry.Request.PostData; pd != nil {
		tx.RequestBody = pd.Text
		tx.RequestContentType = pd.MimeType
	}

	if entry.Response != nil {
		tx.Status = entry.Response.Status
		if c := entry.Response.Content; c != nil {
			text, err := c.DecodedText()
			if err != nil {
				return Transaction{}, err
			}
			tx.ResponseBody = text
			tx.ResponseContentType = c.MimeType
		}
	}
	return tx, nil
}
