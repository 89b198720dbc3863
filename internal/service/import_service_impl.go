package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/revisio/internal/db"
	"github.com/alexanderramin/revisio/internal/domain"
	"github.com/alexanderramin/revisio/internal/importer"
	"github.com/alexanderramin/revisio/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *importService) ImportProfile(ctx context.Context, path string) (*domain.User, error) {
	started := s.now()
	user, err := s.importProfile(ctx, path)
	event := UseCaseEvent{
		Name:      "import_profile",
		Duration:  s.now().Sub(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
		Fields:    map[string]any{"path": path},
	}
	if user != nil {
		event.Fields["user_id"] = user.ID
	}
	s.observer.ObserveUseCase(ctx, event)
	return user, err
}

func (s *importService) importProfile(ctx context.Context, path string) (*domain.User, error) {
	schema, err := importer.LoadImportFile(path)
	if err != nil {
		return nil, err
	}

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("import file invalid:\n  %s", strings.Join(msgs, "\n  "))
	}

	bundle, err := importer.ConvertToDomain(schema, s.now())
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteUserRepo(tx).Create(ctx, bundle.User); err != nil {
			return err
		}
		if bundle.Preferences != nil {
			if err := repository.NewSQLitePreferencesRepo(tx).Upsert(ctx, bundle.Preferences); err != nil {
				return err
			}
		}
		ratingRepo := repository.NewSQLiteRatingRepo(tx)
		for i := range bundle.Ratings {
			if err := ratingRepo.Upsert(ctx, &bundle.Ratings[i]); err != nil {
				return err
			}
		}
		commitRepo := repository.NewSQLiteCommitmentRepo(tx)
		for _, c := range bundle.Commitments {
			if err := commitRepo.Create(ctx, c); err != nil {
				return err
			}
		}
		blockedRepo := repository.NewSQLiteBlockedRepo(tx)
		for _, b := range bundle.Blocked {
			if err := blockedRepo.Create(ctx, bundle.User.ID, b); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bundle.User, nil
}
