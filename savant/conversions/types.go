package conversions

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles conversion audit database operations
type Repository struct {
	db *pgxpool.Pool
}

// terminal states of a conversion attempt
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// one audited conversion attempt
type Record struct {
	ID             string    `json:"id"`
	ConversionType string    `json:"conversion_type"`
	FromFormat     string    `json:"from_format"`
	ToFormat       string    `json:"to_format"`
	FileName       string    `json:"file_name"`
	FileSize       int64     `json:"file_size"`
	Status         string    `json:"status"`
	ErrorMessage   string    `json:"error_message,omitempty"`
	DurationMillis int64     `json:"duration_ms"`
	UserID         string    `json:"user_id,omitempty"`
	IPAddress      string    `json:"ip_address"`
	UserAgent      string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

// aggregate usage numbers for the dashboard
type Stats struct {
	Total     int64            `json:"total"`
	Succeeded int64            `json:"succeeded"`
	Failed    int64            `json:"failed"`
	ByType    map[string]int64 `json:"by_type"`
}
