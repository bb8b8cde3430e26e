package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/skillpath/internal/app"
	"github.com/alexanderramin/skillpath/internal/contract"
	"github.com/alexanderramin/skillpath/internal/dataset"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/planner"
	"github.com/alexanderramin/skillpath/internal/repository"
)

type recommendService struct {
	skills   repository.SkillRepo
	outlook  repository.OutlookRepo
	observer UseCaseObserver
}

func NewRecommendService(
	skills repository.SkillRepo,
	outlook repository.OutlookRepo,
	observers ...UseCaseObserver,
) RecommendService {
	return &recommendService{
		skills:   skills,
		outlook:  outlook,
		observer: composeObservers(observers),
	}
}

// Outlook reports every stored market scenario with its trend ranking.
func (s *recommendService) Outlook(ctx context.Context) (*contract.OutlookReport, error) {
	catalog, err := loadCatalog(ctx, s.skills)
	if err != nil {
		return nil, err
	}
	scenarios, err := s.outlook.ListScenarios(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading scenarios: %w", err)
	}

	return &contract.OutlookReport{
		Scenarios: scenarios,
		Trends:    planner.MarketTrends(catalog, scenarios),
	}, nil
}

// ForProfile recommends what to learn next for a stored profile or an
// explicit acquired set.
func (s *recommendService) ForProfile(ctx context.Context, req contract.RecommendRequest) (report *contract.RecommendReport, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "recommend",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"profile": req.Profile, "method": req.Method},
		})
	}()

	method := req.Method
	if method == "" {
		method = string(domain.MethodAuto)
	}
	if !domain.ValidRecommendMethods[method] {
		return nil, &app.RequestError{
			Code:    app.ErrInvalidMethod,
			Message: fmt.Sprintf("unknown recommendation method %q", method),
		}
	}
	if req.Years < 0 {
		return nil, &app.RequestError{
			Code:    app.ErrInvalidYears,
			Message: fmt.Sprintf("years must be positive, got %d", req.Years),
		}
	}

	catalog, err := loadCatalog(ctx, s.skills)
	if err != nil {
		return nil, err
	}
	scenarios, err := s.outlook.ListScenarios(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading scenarios: %w", err)
	}

	acquired := req.Skills
	profileName := ""
	if len(acquired) == 0 && req.Profile != "" {
		profile, err := s.findProfile(ctx, req.Profile)
		if err != nil {
			return nil, err
		}
		acquired = profile.SkillIDs
		profileName = profile.Name
	}
	if err := checkKnownSkills(catalog, acquired); err != nil {
		return nil, err
	}

	rec, err := planner.Recommend(planner.RecommendInput{
		Catalog:   catalog,
		Scenarios: scenarios,
		Areas:     dataset.DefaultAreas(),
		Acquired:  acquired,
		Method:    domain.RecommendMethod(method),
		Years:     req.Years,
	})
	if err != nil {
		return nil, err
	}

	return &contract.RecommendReport{
		ProfileName:    profileName,
		Acquired:       acquired,
		Recommendation: rec,
		Names:          skillNames(catalog),
	}, nil
}

// CompareProfiles runs the auto-method recommendation for every stored
// profile and summarizes the results side by side.
func (s *recommendService) CompareProfiles(ctx context.Context) (comparisons []contract.ProfileComparison, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "compare-profiles",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	catalog, err := loadCatalog(ctx, s.skills)
	if err != nil {
		return nil, err
	}
	scenarios, err := s.outlook.ListScenarios(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading scenarios: %w", err)
	}
	profiles, err := s.outlook.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading profiles: %w", err)
	}

	areas := dataset.DefaultAreas()
	for _, p := range profiles {
		rec, err := planner.Recommend(planner.RecommendInput{
			Catalog:   catalog,
			Scenarios: scenarios,
			Areas:     areas,
			Acquired:  p.SkillIDs,
			Method:    domain.MethodAuto,
		})
		if err != nil {
			return nil, fmt.Errorf("recommending for profile %q: %w", p.Name, err)
		}

		gapCount := 0
		for _, gap := range rec.Gaps {
			if len(gap.Missing) > 0 {
				gapCount++
			}
		}
		comparisons = append(comparisons, contract.ProfileComparison{
			Profile:       p,
			Method:        rec.Method,
			Recommended:   rec.Recommended,
			ExpectedValue: rec.ExpectedValue,
			Alignment:     rec.MeanAlignment,
			ROI:           rec.ExpectedROI,
			GapCount:      gapCount,
		})
	}
	return comparisons, nil
}

func (s *recommendService) findProfile(ctx context.Context, name string) (domain.Profile, error) {
	profiles, err := s.outlook.ListProfiles(ctx)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("loading profiles: %w", err)
	}

	available := make([]string, 0, len(profiles))
	for _, p := range profiles {
		if p.Name == name {
			return p, nil
		}
		available = append(available, p.Name)
	}

	msg := fmt.Sprintf("profile %q is not stored", name)
	if len(available) > 0 {
		msg += "; available: " + strings.Join(available, ", ")
	}
	return domain.Profile{}, &app.RequestError{Code: app.ErrUnknownProfile, Message: msg}
}
