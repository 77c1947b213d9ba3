package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/studypal/internal/db"
	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/alexanderramin/studypal/internal/importer"
	"github.com/alexanderramin/studypal/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	now      Clock
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, clock Clock, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		now:      clockOrNow(clock),
		observer: useCaseObserverOrNoop(observers),
	}
}

// ImportTasks validates the schema, converts it and inserts every task in
// one transaction. Validation failures are joined into a single error
// wrapping ErrInvalidTask.
func (s *importService) ImportTasks(ctx context.Context, userID string, schema *importer.ImportSchema) (tasks []*domain.Task, err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "import-tasks", startedAt, err, map[string]any{"user_id": userID, "count": len(tasks)})
	}()

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTask, errors.Join(errs...))
	}

	converted := importer.Convert(schema, userID, s.now())
	for _, t := range converted {
		if err := validateTask(t); err != nil {
			return nil, err
		}
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteTaskRepo(tx)
		for _, t := range converted {
			if err := repo.Create(ctx, t); err != nil {
				return fmt.Errorf("importing %q: %w", t.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return converted, nil
}
