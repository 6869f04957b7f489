package assumptions

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Simplici0/savings/internal/savings"
)

// Origin names where the effective assumptions came from.
type Origin string

const (
	OriginFile     Origin = "file"
	OriginStore    Origin = "store"
	OriginDefaults Origin = "defaults"
)

// Source lists the places assumptions may be loaded from. File wins over DB,
// DB wins over the compiled-in defaults.
type Source struct {
	File string
	DB   *sql.DB
}

// Resolve loads the effective assumptions once, at startup.
func Resolve(ctx context.Context, src Source) (savings.Assumptions, Origin, error) {
	if src.File != "" {
		a, err := LoadFile(src.File)
		if err != nil {
			return savings.Assumptions{}, "", err
		}
		return a, OriginFile, nil
	}

	if src.DB != nil {
		a, err := NewStore(src.DB).Get(ctx)
		if err != nil {
			return savings.Assumptions{}, "", fmt.Errorf("load stored assumptions: %w", err)
		}
		if err := a.Validate(); err != nil {
			return savings.Assumptions{}, "", fmt.Errorf("validate stored assumptions: %w", err)
		}
		return a, OriginStore, nil
	}

	return savings.DefaultAssumptions(), OriginDefaults, nil
}
