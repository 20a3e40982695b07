package convert

import (
	"context"

	"codeberg.org/savant/server/internal/auth"
	"codeberg.org/savant/server/internal/dispatch"
	"codeberg.org/savant/server/savant/conversions"
)

// decides whether an identity may start another conversion
type QuotaChecker interface {
	Check(ctx context.Context, id auth.Identity) error
}

// runs a validated conversion request
type Converter interface {
	Convert(req dispatch.Request) (*dispatch.Result, error)
}

// persists audit records without surfacing failures
type AuditRecorder interface {
	Record(ctx context.Context, rec conversions.Record)
}
