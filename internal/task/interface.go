package task

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Parsing
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)
	QuickCreate(ctx context.Context, input QuickCreateInput) (QuickCreateOutput, error)

	// Task CRUD
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, id string) error

	// Completion and summary
	Toggle(ctx context.Context, id string) (ToggleOutput, error)
	Stats(ctx context.Context) (StatsOutput, error)
}
