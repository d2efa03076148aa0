package index

import "context"

//go:generate mockery --name=Engine -r --case underscore --with-expecter --structname Engine --filename engine.go --output=./mocks

// Engine is the set of search engine operations the rebuild protocol is
// built on. Every call is a single blocking request/response round trip.
type Engine interface {
	Exists(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, req CreateRequest) error
	Close(ctx context.Context, name string) error
	Open(ctx context.Context, name string) error
	PutSettings(ctx context.Context, name string, settings map[string]interface{}) error
	PutMapping(ctx context.Context, name string, mapping Mapping) error
	Forcemerge(ctx context.Context, name string) error
	Refresh(ctx context.Context, name string) error
	Delete(ctx context.Context, name string) error

	// AliasIndices lists the indices the alias currently resolves to.
	AliasIndices(ctx context.Context, alias string) ([]string, error)
	// UpdateAliases applies all actions in one atomic call.
	UpdateAliases(ctx context.Context, actions []AliasAction) error

	Bulk(ctx context.Context, name string, docs []Document) error
	OpenScroll(ctx context.Context, name, docType string, size int, keepAlive string) (ScrollPage, error)
	Scroll(ctx context.Context, scrollID, keepAlive string) (ScrollPage, error)
	ClearScroll(ctx context.Context, scrollID string) error
}

type AliasActionType string

const (
	AliasAdd    AliasActionType = "add"
	AliasRemove AliasActionType = "remove"
)

// AliasAction is a single step of an atomic alias update.
type AliasAction struct {
	Type  AliasActionType
	Index string
	Alias string
}

//go:generate mockery --name=CreateHook -r --case underscore --with-expecter --structname CreateHook --filename create_hook.go --output=./mocks

// CreateHook may alter the create request before a new index is created.
// Returning an error aborts the creation.
type CreateHook interface {
	BeforeCreate(ctx context.Context, req CreateRequest) (CreateRequest, error)
}

//go:generate mockery --name=InstallHook -r --case underscore --with-expecter --structname InstallHook --filename install_hook.go --output=./mocks

// InstallHook is notified right before a new index is published under its
// alias. Returning an error aborts the publication.
type InstallHook interface {
	BeforeInstall(ctx context.Context, name string) error
}

type CreateHookFunc func(ctx context.Context, req CreateRequest) (CreateRequest, error)

func (f CreateHookFunc) BeforeCreate(ctx context.Context, req CreateRequest) (CreateRequest, error) {
	return f(ctx, req)
}

type InstallHookFunc func(ctx context.Context, name string) error

func (f InstallHookFunc) BeforeInstall(ctx context.Context, name string) error {
	return f(ctx, name)
}
