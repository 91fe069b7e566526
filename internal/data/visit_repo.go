package data

import (
	"context"

	"go-shortlink/internal/domain"

	"github.com/go-kratos/kratos/v2/log"
)

// Compile-time interface check
var _ domain.VisitRepository = (*visitRepo)(nil)

// visitRepo persists resolved visits for analytics.
type visitRepo struct {
	data *Data
	log  *log.Helper
}

// NewVisitRepo creates a new visit repository.
func NewVisitRepo(data *Data, logger log.Logger) domain.VisitRepository {
	return &visitRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

// Record appends a visit row.
func (r *visitRepo) Record(ctx context.Context, v *domain.Visit) error {
	builder := r.data.db.Visit.Create().
		SetShortCode(v.ShortCode).
		SetLongURL(v.LongURL)

	if v.UserAgent != "" {
		builder.SetUserAgent(v.UserAgent)
	}
	if v.IPAddress != "" {
		builder.SetIPAddress(v.IPAddress)
	}
	if v.Referer != "" {
		builder.SetReferer(v.Referer)
	}
	if !v.VisitedAt.IsZero() {
		builder.SetVisitedAt(v.VisitedAt)
	}

	_, err := builder.Save(ctx)
	return err
}
