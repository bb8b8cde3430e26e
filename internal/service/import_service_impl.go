package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/skillpath/internal/contract"
	"github.com/alexanderramin/skillpath/internal/db"
	"github.com/alexanderramin/skillpath/internal/importer"
	"github.com/alexanderramin/skillpath/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		observer: composeObservers(observers),
	}
}

func (s *importService) ImportFile(ctx context.Context, path string) (*contract.ImportResult, error) {
	doc, err := importer.LoadCatalogFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog file: %w", err)
	}
	result, err := s.ImportDocument(ctx, doc)
	if err != nil {
		return nil, err
	}
	result.Path = path
	return result, nil
}

// ImportDocument validates the document, converts it to domain types and
// replaces the stored catalog atomically. The previous catalog survives
// any failure.
func (s *importService) ImportDocument(ctx context.Context, doc *importer.CatalogDocument) (result *contract.ImportResult, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	if errs := importer.ValidateCatalogDocument(doc); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	converted := importer.ToDomain(doc)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.Querier) error {
		txSkills := repository.NewSQLiteSkillRepo(tx)
		txOutlook := repository.NewSQLiteOutlookRepo(tx)

		if err := txSkills.ReplaceAll(ctx, converted.Catalog.Skills); err != nil {
			return fmt.Errorf("writing skills: %w", err)
		}
		if err := txOutlook.ReplaceScenarios(ctx, converted.Scenarios); err != nil {
			return fmt.Errorf("writing scenarios: %w", err)
		}
		if err := txOutlook.ReplaceProfiles(ctx, converted.Profiles); err != nil {
			return fmt.Errorf("writing profiles: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &contract.ImportResult{
		Skills:    converted.Catalog.Len(),
		Scenarios: len(converted.Scenarios),
		Profiles:  len(converted.Profiles),
	}, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
