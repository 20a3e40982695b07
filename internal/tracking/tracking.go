package tracking

import (
	"context"

	"codeberg.org/savant/server/internal/logger"
	"codeberg.org/savant/server/savant/conversions"
)

// persists audit records
type Inserter interface {
	Insert(ctx context.Context, rec conversions.Record) error
}

// writes conversion audit records without ever failing the caller
type Recorder struct {
	store Inserter
}

func NewRecorder(store Inserter) *Recorder {
	return &Recorder{store: store}
}

// records one conversion attempt; storage failures are logged and
// swallowed so auditing can never break a conversion response
func (r *Recorder) Record(ctx context.Context, rec conversions.Record) {
	if err := r.store.Insert(ctx, rec); err != nil {
		logger.ErrorErr(err, "failed to record conversion",
			"conversion_type", rec.ConversionType,
			"file_name", rec.FileName,
			"status", rec.Status,
		)
	}
}
