package client

import "context"

type ClientRepository interface {
	Create(ctx context.Context, c Client) (Client, error)
	GetByID(ctx context.Context, id string) (Client, error)
	Update(ctx context.Context, c Client) error
	List(ctx context.Context, filter ClientFilter) ([]Client, int64, error)
}
