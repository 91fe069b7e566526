package data

import (
	"context"
	"fmt"

	"go-shortlink/ent"
	"go-shortlink/ent/link"
	"go-shortlink/internal/domain"

	"github.com/go-kratos/kratos/v2/log"
)

// Compile-time interface check
var _ domain.LinkRepository = (*linkRepo)(nil)

// linkRepo implements domain.LinkRepository on top of ent.
type linkRepo struct {
	data *Data
	log  *log.Helper
}

// NewLinkRepo creates a new link repository.
func NewLinkRepo(data *Data, logger log.Logger) domain.LinkRepository {
	return &linkRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

// Save persists a Link entity.
func (r *linkRepo) Save(ctx context.Context, l *domain.Link) error {
	if l.ID() == 0 {
		builder := r.data.db.Link.Create().
			SetShortCode(l.ShortCode().String()).
			SetLongURL(l.LongURL()).
			SetState(link.State(l.State())).
			SetClickCount(l.ClickCount())

		if l.ContactEmail() != "" {
			builder.SetContactEmail(l.ContactEmail())
		}
		if l.Description() != "" {
			builder.SetDescription(l.Description())
		}

		created, err := builder.Save(ctx)
		if err != nil {
			return err
		}

		l.SetID(int64(created.ID))
		return nil
	}

	_, err := r.data.db.Link.UpdateOneID(int(l.ID())).
		SetLongURL(l.LongURL()).
		SetState(link.State(l.State())).
		SetUpdatedAt(l.UpdatedAt()).
		Save(ctx)
	return err
}

// FindActiveByCode retrieves an active link by its short code.
// Returns nil, nil when no active record matches; inactive links are
// indistinguishable from absent ones on this path.
func (r *linkRepo) FindActiveByCode(ctx context.Context, code domain.ShortCode) (*domain.Link, error) {
	l, err := r.data.db.Link.Query().
		Where(
			link.ShortCodeEQ(code.String()),
			link.StateEQ(link.StateActive),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query link %q: %w", code.String(), err)
	}

	return r.entToDomain(l), nil
}

// IncrementClick atomically increments the click counter.
func (r *linkRepo) IncrementClick(ctx context.Context, code domain.ShortCode) error {
	_, err := r.data.db.Link.Update().
		Where(link.ShortCodeEQ(code.String())).
		AddClickCount(1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("increment click %q: %w", code.String(), err)
	}
	return nil
}

// entToDomain converts an ent Link entity to a domain Link.
func (r *linkRepo) entToDomain(l *ent.Link) *domain.Link {
	shortCode, _ := domain.NewShortCode(l.ShortCode)

	return domain.ReconstructLink(
		int64(l.ID),
		shortCode,
		l.LongURL,
		domain.LinkState(l.State),
		l.ClickCount,
		l.ContactEmail,
		l.Description,
		l.CreatedAt,
		l.UpdatedAt,
	)
}
