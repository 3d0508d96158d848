package site

import "context"

type SiteRepository interface {
	Create(ctx context.Context, s Site) (Site, error)
	GetByID(ctx context.Context, id string) (Site, error)
	Update(ctx context.Context, s Site) error
	List(ctx context.Context, filter SiteFilter) ([]Site, int64, error)
}
