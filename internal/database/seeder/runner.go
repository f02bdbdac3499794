package seeder

import (
	"context"
	"fmt"
	"log"

	"projectlink/internal/infrastructure/kv"
)

type Runner struct {
	Seeders []Seeder
	Logger  *log.Logger
}

func (r Runner) Run(ctx context.Context, store *kv.Store) error {
	if store == nil {
		return fmt.Errorf("nil store")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, store); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		if r.Logger != nil {
			r.Logger.Printf("[Seeder] done | seeder=%s", s.Name())
		}
	}
	return nil
}
