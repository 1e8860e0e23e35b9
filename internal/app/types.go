package app

import (
	"io"

	"shoppinglist-card/internal/types"
)

type ValidateRequest struct {
	CardPath string
}

type ValidateResult struct {
	Warnings []string
}

type ProjectRequest struct {
	StatesPath   string
	CardPath     string
	ShoppingList bool
	Locale       string
	// GroupBy and SortBy override the card configuration when set.
	GroupBy string
	SortBy  []string
}

type ProjectResult struct {
	Projection types.Projection
	Products   int
}

type RefreshRequest struct {
	PreviousStatesPath string
	Project            ProjectRequest
}

type RefreshResult struct {
	// StatesChanged is set when any product record differs between snapshots.
	StatesChanged bool
	// Changed is set when the rendered projection differs.
	Changed    bool
	Projection types.Projection
}

type DepsRequest struct {
	RegistryPath string
	Language     string
	Format       types.PanelFormat
	Output       io.Writer
}

type DepsResult struct {
	Missing   []types.CardDependency
	Available bool
}
